package recommend

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ekima-service/internal/models"
)

// ScoreTopics computes a 0-100 base score for each eligible topic from five
// independently capped terms: subject performance, difficulty match, time
// fit, featured bonus, and login recency. asOf anchors the recency decay.
func ScoreTopics(topics []models.Topic, profile LearningProfile, subjects []models.Subject, asOf time.Time) []ScoredTopic {
	scored := make([]ScoredTopic, 0, len(topics))
	for _, topic := range topics {
		scored = append(scored, scoreTopic(topic, profile, subjects, asOf))
	}
	return scored
}

func scoreTopic(topic models.Topic, profile LearningProfile, subjects []models.Subject, asOf time.Time) ScoredTopic {
	score := 0.0
	var reasons []string

	subject := subjectName(topic.SubjectID, subjects)
	perf, ok := profile.PerformanceBySubject[subject]
	if !ok {
		perf = defaultSubjectPerformance
	}
	score += math.Min(perf/100, 1) * subjectTermMax
	if perf >= profileStrongThreshold {
		reasons = append(reasons, fmt.Sprintf("Strong performance in %s", subject))
	}

	score += difficultyTerm(topic.Difficulty, profile.DifficultyPref)
	score += timeFitTerm(topic, profile.AvgSessionTime)

	if topic.IsFeatured {
		score += featuredBonus
		reasons = append(reasons, "Featured topic for your level")
	}

	score += recencyTerm(profile.LastLogin, asOf)

	if len(reasons) == 0 {
		reasons = []string{fmt.Sprintf("Good match for your %s level", strings.ToLower(profile.DifficultyPref))}
	}

	return ScoredTopic{
		Topic:      topic,
		Score:      score,
		Reasons:    reasons,
		Confidence: math.Min(score/100, maxConfidence),
	}
}

// difficultyTerm awards the full 25 on an exact difficulty match, otherwise
// 8 points off per level of distance, floored at 0.
func difficultyTerm(topicDifficulty, preference string) float64 {
	if topicDifficulty == preference {
		return difficultyTermMax
	}
	distance := math.Abs(float64(difficultyLevel(topicDifficulty) - difficultyLevel(preference)))
	return math.Max(0, difficultyTermMax-distance*difficultyMismatchPenalty)
}

// timeFitTerm peaks when the topic's estimated time equals the user's
// average session length and falls off linearly on either side.
func timeFitTerm(topic models.Topic, avgSessionMinutes float64) float64 {
	minutes := topic.EstimatedMinutes(defaultTopicMinutes)
	ratio := math.Min(avgSessionMinutes/float64(minutes), 2)
	return math.Max(0, 1-math.Abs(1-ratio)) * timeFitTermMax
}

// recencyTerm decays linearly from 10 to 0 over a week of inactivity. A
// user with no recorded login gets no recency credit.
func recencyTerm(lastLogin, asOf time.Time) float64 {
	if lastLogin.IsZero() {
		return 0
	}
	days := asOf.Sub(lastLogin).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Max(0, 1-days/7) * recencyTermMax
}
