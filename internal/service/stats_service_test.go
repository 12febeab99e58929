package service

import (
	"testing"
	"time"

	"ekima-service/internal/models"
	"ekima-service/internal/progress"
)

func TestStudyHistoryDuplicatesDoNotInflateStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	// Each record carries the same instant three times, the way
	// UpdateProgress stamps LastAccessedAt, CompletedAt and LastUpdated.
	records := []models.Progress{
		{
			UserID:         "u1",
			ChapterID:      "ch1",
			IsCompleted:    true,
			CompletedAt:    &now,
			LastAccessedAt: &now,
			LastUpdated:    now,
		},
		{
			UserID:         "u1",
			ChapterID:      "ch2",
			IsCompleted:    true,
			CompletedAt:    &yesterday,
			LastAccessedAt: &yesterday,
			LastUpdated:    yesterday,
		},
	}

	history := studyHistory(records)
	if len(history) != 6 {
		t.Fatalf("history length = %d, want 6 raw timestamps", len(history))
	}

	streak := progress.CalculateStreak(history, now)
	if streak.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2 (one per unique day)", streak.CurrentStreak)
	}
	if streak.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", streak.LongestStreak)
	}
}
