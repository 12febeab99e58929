package recommend

import (
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"ekima-service/internal/models"
)

// Engine runs the full recommendation pipeline: profile analysis,
// eligibility filtering, base scoring, strategic re-ranking, and assembly
// of the top results. It holds no mutable state and is safe for concurrent
// use; the clock is injectable so tests control the recency terms.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock builds an engine with a fixed clock source.
func NewEngineWithClock(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Generate produces up to 5 ranked topic recommendations. Any nil input is
// treated as empty, and any panic inside the pipeline degrades to an empty
// result rather than an error.
func (e *Engine) Generate(
	user *models.User,
	progress []models.Progress,
	attempts []models.QuizAttempt,
	topics []models.Topic,
	subjects []models.Subject,
) (result []RecommendedTopic) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recommendation pipeline panic, returning empty set: %v", r)
			result = []RecommendedTopic{}
		}
	}()

	if progress == nil {
		progress = []models.Progress{}
	}
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	asOf := e.now()

	profile := AnalyzeProfile(user, progress, attempts)

	completed := CompletedChapterIDs(progress)
	inProgress := InProgressChapterIDs(progress)
	eligible := EligibleTopics(topics, completed, inProgress)

	scored := ScoreTopics(eligible, profile, subjects, asOf)
	final := ApplyStrategies(scored, profile, subjects)

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(final, func(i, j int) bool {
		return final[i].Score > final[j].Score
	})
	if len(final) > maxRecommendations {
		final = final[:maxRecommendations]
	}

	result = make([]RecommendedTopic, 0, len(final))
	for _, st := range final {
		result = append(result, assemble(st, subjects, asOf))
	}
	return result
}

func assemble(st ScoredTopic, subjects []models.Subject, asOf time.Time) RecommendedTopic {
	subject := subjectName(st.Topic.SubjectID, subjects)
	return RecommendedTopic{
		TopicID:       st.Topic.ID,
		Name:          st.Topic.Name,
		Subject:       subject,
		Difficulty:    st.Topic.Difficulty,
		EstimatedTime: st.Topic.EstimatedTime,
		Reasons:       st.Reasons,
		Confidence:    st.Confidence,
		Score:         st.Score,
		ContentTypes:  contentTypes(st.Topic, subject),
		Priority:      priorityBucket(st.Score),
		CreatedAt:     asOf,
	}
}

// priorityBucket maps a final score onto the 1-5 priority scale. Strategy
// bonuses can push scores past 100, so the bucket is clamped explicitly.
func priorityBucket(score float64) int {
	bucket := int(math.Ceil(score / 20))
	if bucket < 1 {
		return 1
	}
	if bucket > maxRecommendations {
		return maxRecommendations
	}
	return bucket
}

func contentTypes(topic models.Topic, subject string) []string {
	types := []string{"video", "quiz"}

	if strings.Contains(strings.ToLower(topic.Name), "experiment") ||
		subject == "Physics" || subject == "Chemistry" {
		types = append(types, "experiment")
	}
	if topic.Difficulty == DifficultyHard {
		types = append(types, "simulation")
	}
	if subject == "Biology" {
		types = append(types, "3d-model")
	}
	return types
}
