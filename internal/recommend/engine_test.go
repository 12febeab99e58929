package recommend

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"ekima-service/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateNilInputs(t *testing.T) {
	engine := NewEngine()

	result := engine.Generate(nil, nil, nil, nil, nil)
	if result == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("Expected no recommendations, got %d", len(result))
	}
}

func TestGenerateCountBound(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	engine := NewEngineWithClock(fixedClock(asOf))

	var topics []models.Topic
	for i := 0; i < 20; i++ {
		topics = append(topics, models.Topic{
			ID:            fmt.Sprintf("t%d", i),
			Name:          fmt.Sprintf("Topic %d", i),
			SubjectID:     "sub-math",
			Difficulty:    DifficultyMedium,
			EstimatedTime: "45",
		})
	}

	result := engine.Generate(nil, nil, nil, topics, nil)
	if len(result) > 5 {
		t.Errorf("Expected at most 5 recommendations, got %d", len(result))
	}
}

func TestGenerateDeterminism(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	engine := NewEngineWithClock(fixedClock(asOf))

	user := &models.User{ID: "u1", LastLoginAt: asOf.AddDate(0, 0, -1)}
	progress := []models.Progress{
		{ChapterID: "ch_algebra_basics", IsCompleted: true, TimeSpentMs: 40 * 60000, AssessmentScoreAverage: 88},
	}
	attempts := []models.QuizAttempt{
		{Subject: "Mathematics", Score: 85, Difficulty: DifficultyMedium},
	}
	topics := []models.Topic{
		{ID: "t1", Name: "Linear Equations", SubjectID: "sub-math", Difficulty: DifficultyMedium, EstimatedTime: "40", Prerequisites: []string{"algebra_basics"}},
		{ID: "t2", Name: "Optics", SubjectID: "sub-phy", Difficulty: DifficultyHard, EstimatedTime: "60"},
	}
	subjects := []models.Subject{
		{ID: "sub-math", Name: "Mathematics"},
		{ID: "sub-phy", Name: "Physics"},
	}

	first := engine.Generate(user, progress, attempts, topics, subjects)
	second := engine.Generate(user, progress, attempts, topics, subjects)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical inputs")
	}
}

func TestGenerateStableTieBreak(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	engine := NewEngineWithClock(fixedClock(asOf))

	// Identical topics score identically; catalog order must win.
	topics := []models.Topic{
		{ID: "first", Name: "A", SubjectID: "s", Difficulty: DifficultyMedium, EstimatedTime: "45"},
		{ID: "second", Name: "B", SubjectID: "s", Difficulty: DifficultyMedium, EstimatedTime: "45"},
	}

	result := engine.Generate(nil, nil, nil, topics, nil)
	if len(result) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(result))
	}
	if result[0].TopicID != "first" || result[1].TopicID != "second" {
		t.Errorf("Expected catalog order on ties, got %s then %s", result[0].TopicID, result[1].TopicID)
	}
}

func TestGenerateConfidenceCap(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	engine := NewEngineWithClock(fixedClock(asOf))

	// Stack every bonus: strong subject, featured, exact fits, weak-subject
	// reinforcement via a second subject, prerequisites.
	user := &models.User{ID: "u1", LastLoginAt: asOf}
	progress := []models.Progress{
		{ChapterID: "ch_basics", IsCompleted: true, TimeSpentMs: 45 * 60000},
	}
	attempts := []models.QuizAttempt{
		{Subject: "Mathematics", Score: 98, Difficulty: DifficultyMedium},
		{Subject: "Physics", Score: 30, Difficulty: DifficultyMedium},
	}
	topics := []models.Topic{
		{ID: "t1", Name: "Forces", SubjectID: "sub-phy", Difficulty: DifficultyMedium, EstimatedTime: "45", IsFeatured: true, Prerequisites: []string{"basic"}},
	}
	subjects := []models.Subject{
		{ID: "sub-math", Name: "Mathematics"},
		{ID: "sub-phy", Name: "Physics"},
	}

	result := engine.Generate(user, progress, attempts, topics, subjects)
	if len(result) == 0 {
		t.Fatal("Expected a recommendation")
	}
	for _, r := range result {
		if r.Confidence > 0.95 {
			t.Errorf("Confidence %f exceeds 0.95 cap", r.Confidence)
		}
		if r.Priority < 1 || r.Priority > 5 {
			t.Errorf("Priority %d outside 1-5", r.Priority)
		}
	}
}

func TestGenerateEndToEndScenario(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	engine := NewEngineWithClock(fixedClock(asOf))

	user := &models.User{ID: "u1", LastLoginAt: asOf}
	// One non-completed, zero-progress record sets the 45 minute session
	// average without touching eligibility.
	progress := []models.Progress{
		{ChapterID: "ch_other", TimeSpentMs: 45 * 60000},
	}
	attempts := []models.QuizAttempt{
		{Subject: "Mathematics", Score: 85, Difficulty: DifficultyMedium},
	}
	topics := []models.Topic{
		{ID: "t1", Name: "Quadratic Equations", SubjectID: "sub-math", Difficulty: DifficultyMedium, EstimatedTime: "45"},
	}
	subjects := []models.Subject{{ID: "sub-math", Name: "Mathematics"}}

	result := engine.Generate(user, progress, attempts, topics, subjects)
	if len(result) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(result))
	}

	r := result[0]
	// 25.5 subject + 25 difficulty + 20 time + 0 featured + 10 recency.
	if math.Abs(r.Score-80.5) > 0.01 {
		t.Errorf("Expected score 80.5, got %.2f", r.Score)
	}
	if !containsString(r.Reasons, "Strong performance in Mathematics") {
		t.Errorf("Expected strong-performance reason, got %v", r.Reasons)
	}
	if r.Subject != "Mathematics" {
		t.Errorf("Expected resolved subject name, got %s", r.Subject)
	}
	if r.Priority != 5 {
		t.Errorf("Expected priority 5 for score 80.5, got %d", r.Priority)
	}
	if !r.CreatedAt.Equal(asOf) {
		t.Errorf("Expected CreatedAt %v, got %v", asOf, r.CreatedAt)
	}
}

func TestContentTypeInference(t *testing.T) {
	testCases := []struct {
		name     string
		topic    models.Topic
		subject  string
		expected []string
	}{
		{
			"defaults",
			models.Topic{Name: "Algebra", Difficulty: DifficultyEasy},
			"Mathematics",
			[]string{"video", "quiz"},
		},
		{
			"physics adds experiment",
			models.Topic{Name: "Forces", Difficulty: DifficultyEasy},
			"Physics",
			[]string{"video", "quiz", "experiment"},
		},
		{
			"experiment in name",
			models.Topic{Name: "Titration Experiment", Difficulty: DifficultyEasy},
			"Mathematics",
			[]string{"video", "quiz", "experiment"},
		},
		{
			"hard adds simulation",
			models.Topic{Name: "Calculus", Difficulty: DifficultyHard},
			"Mathematics",
			[]string{"video", "quiz", "simulation"},
		},
		{
			"biology adds 3d model",
			models.Topic{Name: "Cells", Difficulty: DifficultyEasy},
			"Biology",
			[]string{"video", "quiz", "3d-model"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := contentTypes(tc.topic, tc.subject)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestPriorityBucketClamped(t *testing.T) {
	testCases := []struct {
		score    float64
		expected int
	}{
		{0, 1},
		{15, 1},
		{21, 2},
		{80.5, 5},
		{100, 5},
		{140, 5}, // strategy bonuses can exceed 100
	}

	for _, tc := range testCases {
		if got := priorityBucket(tc.score); got != tc.expected {
			t.Errorf("score %.1f: expected priority %d, got %d", tc.score, tc.expected, got)
		}
	}
}
