package recommend

import (
	"ekima-service/internal/models"
)

// ApplyStrategies layers additive strategic adjustments over the base
// scores: weak-subject reinforcement, learning-speed synergy, and a
// sequential-learning nudge for topics that sit inside a prerequisite
// chain. Final scores are uncapped.
func ApplyStrategies(scored []ScoredTopic, profile LearningProfile, subjects []models.Subject) []ScoredTopic {
	out := make([]ScoredTopic, len(scored))
	for i, st := range scored {
		reasons := append([]string(nil), st.Reasons...)
		score := st.Score

		subject := subjectName(st.Topic.SubjectID, subjects)
		if containsString(profile.WeakSubjects, subject) {
			score += weakSubjectBonus
			reasons = append(reasons, "Helps improve your weaker areas")
		}

		// At most one speed bonus applies per topic.
		if profile.LearningSpeed == SpeedFast && st.Topic.Difficulty == DifficultyHard {
			score += speedSynergyBonus
			reasons = append(reasons, "Challenge for fast learners")
		} else if profile.LearningSpeed == SpeedSlow && st.Topic.Difficulty == DifficultyEasy {
			score += speedSynergyBonus
			reasons = append(reasons, "Good pace for steady learning")
		}

		if len(st.Topic.Prerequisites) > 0 {
			score += sequentialBonus
		}

		out[i] = ScoredTopic{
			Topic:      st.Topic,
			Score:      score,
			Reasons:    reasons,
			Confidence: st.Confidence,
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
