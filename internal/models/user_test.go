package models

import (
	"testing"
	"time"
)

func TestRecordDailyActivity(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day5 := day1.AddDate(0, 0, 4)

	u := &User{}

	u.RecordDailyActivity(day1)
	if u.CurrentStreak != 1 || u.LongestStreak != 1 {
		t.Fatalf("Expected streak 1/1 after first activity, got %d/%d", u.CurrentStreak, u.LongestStreak)
	}

	// Same day again is a no-op for the streak.
	u.RecordDailyActivity(day1.Add(5 * time.Hour))
	if u.CurrentStreak != 1 {
		t.Errorf("Expected same-day activity not to extend streak, got %d", u.CurrentStreak)
	}

	// Next day extends it.
	u.RecordDailyActivity(day2)
	if u.CurrentStreak != 2 || u.LongestStreak != 2 {
		t.Errorf("Expected streak 2/2, got %d/%d", u.CurrentStreak, u.LongestStreak)
	}

	// A gap resets current but longest stays.
	u.RecordDailyActivity(day5)
	if u.CurrentStreak != 1 {
		t.Errorf("Expected streak reset to 1 after gap, got %d", u.CurrentStreak)
	}
	if u.LongestStreak != 2 {
		t.Errorf("Expected longest streak preserved at 2, got %d", u.LongestStreak)
	}
}

func TestTopicEstimatedMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected int
	}{
		{"plain number", "45", 45},
		{"with unit", "45 min", 45},
		{"sentence", "about 30 minutes", 30},
		{"empty falls back", "", 60},
		{"garbage falls back", "a while", 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topic := Topic{EstimatedTime: tc.raw}
			if got := topic.EstimatedMinutes(60); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestProgressClampPercentages(t *testing.T) {
	p := Progress{
		VideoProgress:          120,
		NotesProgress:          -5,
		OverallProgress:        50,
		AssessmentScoreAverage: 101,
	}
	p.ClampPercentages()

	if p.VideoProgress != 100 || p.NotesProgress != 0 || p.OverallProgress != 50 || p.AssessmentScoreAverage != 100 {
		t.Errorf("Expected clamped percentages, got %+v", p)
	}
}
