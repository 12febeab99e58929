package progress

import (
	"math"
	"sort"
	"time"

	"ekima-service/internal/models"
)

// Aggregate strong/weak thresholds. Note these are intentionally different
// from the profile analyzer's 75/60 split.
const (
	metricsStrongThreshold = 80.0
	metricsWeakThreshold   = 60.0
	maxSubjectHighlights   = 3
)

// SubjectAverage is a per-subject score summary for analytics.
type SubjectAverage struct {
	Subject      string  `json:"subject"`
	AverageScore float64 `json:"average_score"`
	ChapterCount int     `json:"chapter_count"`
}

// PerformanceMetrics aggregates a user's study history for dashboards.
type PerformanceMetrics struct {
	AverageQuizScore      float64          `json:"average_quiz_score"`
	AverageTimePerChapter float64          `json:"average_time_per_chapter"`
	CompletionRate        float64          `json:"completion_rate"`
	LearningVelocity      float64          `json:"learning_velocity"`
	StrongSubjects        []SubjectAverage `json:"strong_subjects"`
	WeakSubjects          []SubjectAverage `json:"weak_subjects"`
}

// CalculatePerformanceMetrics computes aggregate analytics over progress
// records. Score and time averages cover completed records only, while the
// completion rate is measured against the full input set. Learning velocity
// is completed chapters per week since the earliest completion, relative to
// asOf.
func CalculatePerformanceMetrics(records []models.Progress, asOf time.Time) PerformanceMetrics {
	if len(records) == 0 {
		return PerformanceMetrics{
			StrongSubjects: []SubjectAverage{},
			WeakSubjects:   []SubjectAverage{},
		}
	}

	var completed []models.Progress
	for _, r := range records {
		if r.IsCompleted {
			completed = append(completed, r)
		}
	}

	var avgScore, avgTime float64
	if len(completed) > 0 {
		var scoreSum, timeSum float64
		for _, r := range completed {
			scoreSum += r.AssessmentScoreAverage
			timeSum += float64(r.TimeSpentMs)
		}
		avgScore = scoreSum / float64(len(completed))
		avgTime = timeSum / float64(len(completed))
	}

	completionRate := float64(len(completed)) / float64(len(records)) * 100

	velocity := 0.0
	if len(completed) > 0 {
		first := asOf
		for _, r := range completed {
			if r.CompletedAt != nil && r.CompletedAt.Before(first) {
				first = *r.CompletedAt
			}
		}
		days := asOf.Sub(first).Hours() / 24
		if days > 0 {
			velocity = float64(len(completed)) / days * 7
		}
	}

	strong, weak := subjectHighlights(completed)

	return PerformanceMetrics{
		AverageQuizScore:      round2(avgScore),
		AverageTimePerChapter: round2(avgTime),
		CompletionRate:        round2(completionRate),
		LearningVelocity:      round2(velocity),
		StrongSubjects:        strong,
		WeakSubjects:          weak,
	}
}

func subjectHighlights(completed []models.Progress) (strong, weak []SubjectAverage) {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	order := []string{}
	for _, r := range completed {
		b, ok := buckets[r.SubjectID]
		if !ok {
			b = &bucket{}
			buckets[r.SubjectID] = b
			order = append(order, r.SubjectID)
		}
		b.sum += r.AssessmentScoreAverage
		b.count++
	}

	averages := make([]SubjectAverage, 0, len(order))
	for _, subject := range order {
		b := buckets[subject]
		averages = append(averages, SubjectAverage{
			Subject:      subject,
			AverageScore: b.sum / float64(b.count),
			ChapterCount: b.count,
		})
	}

	strong = []SubjectAverage{}
	weak = []SubjectAverage{}
	for _, a := range averages {
		if a.AverageScore >= metricsStrongThreshold {
			strong = append(strong, a)
		} else if a.AverageScore < metricsWeakThreshold {
			weak = append(weak, a)
		}
	}

	sort.SliceStable(strong, func(i, j int) bool { return strong[i].AverageScore > strong[j].AverageScore })
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].AverageScore < weak[j].AverageScore })

	if len(strong) > maxSubjectHighlights {
		strong = strong[:maxSubjectHighlights]
	}
	if len(weak) > maxSubjectHighlights {
		weak = weak[:maxSubjectHighlights]
	}
	return strong, weak
}

// TopicCompletion summarizes how far through a topic's chapters a user is.
type TopicCompletion struct {
	Percentage        float64 `json:"percentage"`
	CompletedChapters int     `json:"completed_chapters"`
	TotalChapters     int     `json:"total_chapters"`
	AverageScore      float64 `json:"average_score"`
	TotalTimeMs       int64   `json:"total_time_ms"`
}

// CalculateTopicCompletion measures completion of the given chapter ids
// against the user's progress records.
func CalculateTopicCompletion(chapterIDs []string, records []models.Progress) TopicCompletion {
	byChapter := make(map[string]models.Progress, len(records))
	for _, r := range records {
		byChapter[r.ChapterID] = r
	}

	result := TopicCompletion{TotalChapters: len(chapterIDs)}
	var scoreSum float64
	for _, id := range chapterIDs {
		r, ok := byChapter[id]
		if !ok || !r.IsCompleted {
			continue
		}
		result.CompletedChapters++
		scoreSum += r.AssessmentScoreAverage
		result.TotalTimeMs += r.TimeSpentMs
	}

	if result.TotalChapters > 0 {
		result.Percentage = round2(float64(result.CompletedChapters) / float64(result.TotalChapters) * 100)
	}
	if result.CompletedChapters > 0 {
		result.AverageScore = round2(scoreSum / float64(result.CompletedChapters))
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
