package progress

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return parsed
}

func TestCalculateStreak(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	testCases := []struct {
		name            string
		history         []string
		expectedCurrent int
		expectedLongest int
	}{
		{"empty history", nil, 0, 0},
		{"today only", []string{"2024-03-15"}, 1, 1},
		{"three day run ending today", []string{"2024-03-15", "2024-03-14", "2024-03-13"}, 3, 3},
		{"run ending yesterday still counts", []string{"2024-03-14", "2024-03-13"}, 2, 2},
		{"stale run drops current but keeps longest", []string{"2024-03-12"}, 0, 1},
		{"gap resets current, longest survives", []string{"2024-03-15", "2024-03-10", "2024-03-09", "2024-03-08"}, 1, 3},
		{"duplicate days collapse", []string{"2024-03-15", "2024-03-15", "2024-03-14"}, 2, 2},
		{"unsorted input", []string{"2024-03-13", "2024-03-15", "2024-03-14"}, 3, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var history []time.Time
			for _, d := range tc.history {
				history = append(history, day(t, d))
			}

			info := CalculateStreak(history, asOf)
			if info.CurrentStreak != tc.expectedCurrent {
				t.Errorf("Expected current streak %d, got %d", tc.expectedCurrent, info.CurrentStreak)
			}
			if info.LongestStreak != tc.expectedLongest {
				t.Errorf("Expected longest streak %d, got %d", tc.expectedLongest, info.LongestStreak)
			}
		})
	}
}

func TestCalculateStreakLastStudyDate(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	history := []time.Time{day(t, "2024-03-10"), day(t, "2024-03-12")}

	info := CalculateStreak(history, asOf)
	if info.LastStudyDate == nil {
		t.Fatal("Expected last study date to be set")
	}
	if !info.LastStudyDate.Equal(day(t, "2024-03-12")) {
		t.Errorf("Expected last study date 2024-03-12, got %v", info.LastStudyDate)
	}

	empty := CalculateStreak(nil, asOf)
	if empty.LastStudyDate != nil {
		t.Errorf("Expected nil last study date for empty history, got %v", empty.LastStudyDate)
	}
}
