package recommend

import (
	"math"

	"ekima-service/internal/models"
)

// Completion-time thresholds for learning speed, in milliseconds.
const (
	fastCompletionMs = 30 * 60 * 1000
	slowCompletionMs = 60 * 60 * 1000
)

const defaultSessionMinutes = 30

// AnalyzeProfile builds a LearningProfile from a user's raw history. Every
// input may be nil or empty; a brand-new user gets a neutral profile.
func AnalyzeProfile(user *models.User, progress []models.Progress, attempts []models.QuizAttempt) LearningProfile {
	profile := LearningProfile{
		AvgSessionTime:       averageSessionTime(progress),
		PerformanceBySubject: subjectPerformance(attempts),
		OverallPerformance:   overallPerformance(attempts),
		ContentTypePref:      contentPreference(progress),
		DifficultyPref:       difficultyPreference(attempts),
		LearningSpeed:        learningSpeed(progress),
		StrongSubjects:       []string{},
		WeakSubjects:         []string{},
	}

	if user != nil {
		profile.UserID = user.ID
		profile.TotalTimeSpentMs = user.TimeSpentMs
		profile.AgeGroup = user.AgeGroup
		profile.Level = user.Level
		profile.Region = user.Region
		profile.DeviceType = user.DeviceType
		profile.LastLogin = user.LastLoginAt
	}

	for subject, score := range profile.PerformanceBySubject {
		if score >= profileStrongThreshold {
			profile.StrongSubjects = append(profile.StrongSubjects, subject)
		} else if score < profileWeakThreshold {
			profile.WeakSubjects = append(profile.WeakSubjects, subject)
		}
	}

	return profile
}

// averageSessionTime is the mean session length in minutes over records with
// recorded time, defaulting to 30 for empty histories.
func averageSessionTime(progress []models.Progress) float64 {
	var totalMs int64
	sessions := 0
	for _, p := range progress {
		if p.TimeSpentMs > 0 {
			totalMs += p.TimeSpentMs
			sessions++
		}
	}
	if sessions == 0 {
		return defaultSessionMinutes
	}
	return math.Round(float64(totalMs) / float64(sessions) / 60000)
}

func subjectPerformance(attempts []models.QuizAttempt) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range attempts {
		sums[a.Subject] += a.Score
		counts[a.Subject]++
	}

	averages := make(map[string]float64, len(sums))
	for subject, sum := range sums {
		averages[subject] = sum / float64(counts[subject])
	}
	return averages
}

func overallPerformance(attempts []models.QuizAttempt) float64 {
	if len(attempts) == 0 {
		return 50
	}
	var sum float64
	for _, a := range attempts {
		sum += a.Score
	}
	return math.Round(sum / float64(len(attempts)))
}

// contentPreference buckets study time by interaction kind and picks the
// biggest bucket. Ties resolve video > experiment > notes.
func contentPreference(progress []models.Progress) string {
	var videoTime, experimentTime, notesTime int64
	for _, p := range progress {
		if p.VideoProgress > 50 {
			videoTime += p.TimeSpentMs
		}
		if p.ExperimentsAttempted > 0 {
			experimentTime += p.TimeSpentMs
		}
		if p.NotesProgress > 50 {
			notesTime += p.TimeSpentMs
		}
	}

	if videoTime+experimentTime+notesTime == 0 {
		return ContentVideo
	}
	if videoTime >= experimentTime && videoTime >= notesTime {
		return ContentVideo
	}
	if experimentTime >= notesTime {
		return ContentExperiment
	}
	return ContentNotes
}

// difficultyPreference picks the difficulty label with the best average
// score. Unrecognized labels count toward Medium.
func difficultyPreference(attempts []models.QuizAttempt) string {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, a := range attempts {
		label := a.Difficulty
		switch label {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			label = DifficultyMedium
		}
		sums[label] += a.Score
		counts[label]++
	}

	best := DifficultyMedium
	bestScore := 0.0
	for _, label := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if counts[label] == 0 {
			continue
		}
		avg := sums[label] / float64(counts[label])
		if avg > bestScore {
			bestScore = avg
			best = label
		}
	}
	return best
}

func learningSpeed(progress []models.Progress) string {
	var totalMs int64
	completed := 0
	for _, p := range progress {
		if p.IsCompleted {
			totalMs += p.TimeSpentMs
			completed++
		}
	}
	if completed == 0 {
		return SpeedMedium
	}

	avg := float64(totalMs) / float64(completed)
	switch {
	case avg < fastCompletionMs:
		return SpeedFast
	case avg > slowCompletionMs:
		return SpeedSlow
	default:
		return SpeedMedium
	}
}
