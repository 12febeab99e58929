package progress

import (
	"math"
	"testing"
	"time"

	"ekima-service/internal/models"
)

func completedRecord(subject string, score float64, timeMs int64, completedAt time.Time) models.Progress {
	return models.Progress{
		SubjectID:              subject,
		AssessmentScoreAverage: score,
		TimeSpentMs:            timeMs,
		IsCompleted:            true,
		CompletedAt:            &completedAt,
	}
}

func TestCalculatePerformanceMetricsEmpty(t *testing.T) {
	m := CalculatePerformanceMetrics(nil, time.Now())
	if m.AverageQuizScore != 0 || m.CompletionRate != 0 || m.LearningVelocity != 0 {
		t.Errorf("Expected zero metrics for empty input, got %+v", m)
	}
	if m.StrongSubjects == nil || m.WeakSubjects == nil {
		t.Error("Expected empty slices, not nil")
	}
}

func TestCalculatePerformanceMetricsAverages(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	weekAgo := asOf.AddDate(0, 0, -7)

	records := []models.Progress{
		completedRecord("math", 80, 60000, weekAgo),
		completedRecord("math", 90, 120000, asOf.AddDate(0, 0, -3)),
		{SubjectID: "physics", IsCompleted: false},
		{SubjectID: "physics", IsCompleted: false},
	}

	m := CalculatePerformanceMetrics(records, asOf)

	if math.Abs(m.AverageQuizScore-85) > 0.01 {
		t.Errorf("Expected average score 85, got %.2f", m.AverageQuizScore)
	}
	if math.Abs(m.AverageTimePerChapter-90000) > 0.01 {
		t.Errorf("Expected average time 90000, got %.2f", m.AverageTimePerChapter)
	}
	// Completion rate covers the full input set, not just completed records.
	if math.Abs(m.CompletionRate-50) > 0.01 {
		t.Errorf("Expected completion rate 50, got %.2f", m.CompletionRate)
	}
	// 2 completions over 7 days = 2 per week.
	if math.Abs(m.LearningVelocity-2) > 0.01 {
		t.Errorf("Expected learning velocity 2, got %.2f", m.LearningVelocity)
	}
}

func TestSubjectHighlightThresholds(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	past := asOf.AddDate(0, 0, -10)

	records := []models.Progress{
		completedRecord("math", 95, 0, past),
		completedRecord("chemistry", 80, 0, past),
		completedRecord("physics", 79, 0, past), // below the 80 strong cutoff
		completedRecord("biology", 59, 0, past), // below the 60 weak cutoff
		completedRecord("history", 60, 0, past), // exactly 60 is neither
	}

	m := CalculatePerformanceMetrics(records, asOf)

	if len(m.StrongSubjects) != 2 {
		t.Fatalf("Expected 2 strong subjects, got %d", len(m.StrongSubjects))
	}
	if m.StrongSubjects[0].Subject != "math" || m.StrongSubjects[1].Subject != "chemistry" {
		t.Errorf("Expected strong subjects sorted best-first, got %+v", m.StrongSubjects)
	}

	if len(m.WeakSubjects) != 1 || m.WeakSubjects[0].Subject != "biology" {
		t.Errorf("Expected only biology weak, got %+v", m.WeakSubjects)
	}
}

func TestSubjectHighlightsCappedAtThree(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	past := asOf.AddDate(0, 0, -10)

	var records []models.Progress
	for i, subject := range []string{"a", "b", "c", "d", "e"} {
		records = append(records, completedRecord(subject, 90+float64(i), 0, past))
	}

	m := CalculatePerformanceMetrics(records, asOf)
	if len(m.StrongSubjects) != 3 {
		t.Fatalf("Expected strong subjects capped at 3, got %d", len(m.StrongSubjects))
	}
	if m.StrongSubjects[0].Subject != "e" {
		t.Errorf("Expected best subject first, got %s", m.StrongSubjects[0].Subject)
	}
}

func TestCalculateTopicCompletion(t *testing.T) {
	now := time.Now()
	records := []models.Progress{
		{ChapterID: "ch1", IsCompleted: true, CompletedAt: &now, AssessmentScoreAverage: 80, TimeSpentMs: 1000},
		{ChapterID: "ch2", IsCompleted: false},
	}

	c := CalculateTopicCompletion([]string{"ch1", "ch2", "ch3"}, records)
	if c.CompletedChapters != 1 || c.TotalChapters != 3 {
		t.Errorf("Expected 1/3 chapters, got %d/%d", c.CompletedChapters, c.TotalChapters)
	}
	if math.Abs(c.Percentage-33.33) > 0.01 {
		t.Errorf("Expected 33.33%%, got %.2f", c.Percentage)
	}
	if math.Abs(c.AverageScore-80) > 0.01 {
		t.Errorf("Expected average score 80, got %.2f", c.AverageScore)
	}

	empty := CalculateTopicCompletion(nil, records)
	if empty.Percentage != 0 {
		t.Errorf("Expected 0%% for empty chapter list, got %.2f", empty.Percentage)
	}
}
