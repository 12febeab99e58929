package recommend

import (
	"time"

	"ekima-service/internal/models"
)

// Difficulty labels used across the topic catalog and quiz attempts.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Learning speed classifications derived from completion times.
const (
	SpeedFast   = "fast"
	SpeedMedium = "medium"
	SpeedSlow   = "slow"
)

// Content type preferences.
const (
	ContentVideo      = "video"
	ContentExperiment = "experiment"
	ContentNotes      = "notes"
)

// Profile analyzer thresholds. The aggregate metrics helper uses a separate
// 80/60 split; the two are intentionally distinct.
const (
	profileStrongThreshold = 75.0
	profileWeakThreshold   = 60.0
)

// Scoring term weights. Each term is capped independently; the base score
// sums to at most 100.
const (
	subjectTermMax    = 30.0
	difficultyTermMax = 25.0
	timeFitTermMax    = 20.0
	featuredBonus     = 15.0
	recencyTermMax    = 10.0

	difficultyMismatchPenalty = 8.0
	defaultSubjectPerformance = 50.0
	defaultTopicMinutes       = 45
	maxConfidence             = 0.95
)

// Strategy bonuses applied on top of the base score.
const (
	weakSubjectBonus   = 10.0
	speedSynergyBonus  = 5.0
	sequentialBonus    = 3.0
	maxRecommendations = 5
)

// LearningProfile is the ephemeral summary of a user's performance and
// preferences, recomputed on every recommendation request.
type LearningProfile struct {
	UserID               string             `json:"user_id"`
	TotalTimeSpentMs     int64              `json:"total_time_spent_ms"`
	AvgSessionTime       float64            `json:"avg_session_time"`
	PerformanceBySubject map[string]float64 `json:"performance_by_subject"`
	OverallPerformance   float64            `json:"overall_performance"`
	ContentTypePref      string             `json:"content_type_preference"`
	DifficultyPref       string             `json:"difficulty_preference"`
	LearningSpeed        string             `json:"learning_speed"`
	StrongSubjects       []string           `json:"strong_subjects"`
	WeakSubjects         []string           `json:"weak_subjects"`

	AgeGroup   string    `json:"age_group"`
	Level      string    `json:"level"`
	Region     string    `json:"region"`
	DeviceType string    `json:"device_type"`
	LastLogin  time.Time `json:"last_login"`
}

// ScoredTopic pairs a catalog topic with its running score and the
// human-readable justifications collected along the pipeline.
type ScoredTopic struct {
	Topic      models.Topic `json:"topic"`
	Score      float64      `json:"score"`
	Reasons    []string     `json:"reasons"`
	Confidence float64      `json:"confidence"`
}

// RecommendedTopic is the final output entry handed to callers.
type RecommendedTopic struct {
	TopicID       string    `json:"topic_id"`
	Name          string    `json:"name"`
	Subject       string    `json:"subject"`
	Difficulty    string    `json:"difficulty"`
	EstimatedTime string    `json:"estimated_time"`
	Reasons       []string  `json:"reasons"`
	Confidence    float64   `json:"confidence"`
	Score         float64   `json:"score"`
	ContentTypes  []string  `json:"content_types"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

func difficultyLevel(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// subjectName resolves a topic's subject reference to a display name.
func subjectName(subjectID string, subjects []models.Subject) string {
	for _, s := range subjects {
		if s.ID == subjectID {
			return s.Name
		}
	}
	return "Unknown Subject"
}
