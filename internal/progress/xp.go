package progress

import (
	"math"
	"strings"
)

const (
	ChapterBaseXP = 50
	QuizBaseXP    = 25

	streakBonusMultiplier      = 0.1
	performanceBonusMultiplier = 0.5

	minChapterXP = 10
	minQuizXP    = 5
)

var difficultyMultipliers = map[string]float64{
	"easy":   1.0,
	"medium": 1.2,
	"hard":   1.5,
	"expert": 2.0,
}

// ChapterInfo carries the chapter attributes the XP formula needs.
type ChapterInfo struct {
	Difficulty       string
	EstimatedMinutes int
}

// CalculateChapterXP computes XP for completing a chapter. Difficulty scales
// the base, quiz performance and streak add proportional bonuses, and
// finishing within the estimated time earns a flat efficiency bonus.
func CalculateChapterXP(chapter ChapterInfo, timeSpentMinutes float64, quizScore float64, streakDays int) int {
	base := float64(ChapterBaseXP)

	mult, ok := difficultyMultipliers[strings.ToLower(chapter.Difficulty)]
	if !ok {
		mult = difficultyMultipliers["medium"]
	}
	base *= mult

	quizScore = clampScore(quizScore)
	if streakDays < 0 {
		streakDays = 0
	}

	performanceBonus := (quizScore / 100) * performanceBonusMultiplier * base
	streakBonus := float64(streakDays) * streakBonusMultiplier * base

	expected := chapter.EstimatedMinutes
	if expected <= 0 {
		expected = 30
	}
	efficiencyBonus := 0.0
	if timeSpentMinutes <= float64(expected) {
		efficiencyBonus = base * 0.2
	}

	total := int(math.Round(base + performanceBonus + streakBonus + efficiencyBonus))
	if total < minChapterXP {
		return minChapterXP
	}
	return total
}

// CalculateQuizXP computes XP for a quiz run. The base scales with question
// count, the score multiplies it, repeat attempts decay the reward down to
// half, and averaging under a minute per question earns a time bonus.
func CalculateQuizXP(score float64, questionCount int, timeSpentMinutes float64, attempts int) int {
	if questionCount <= 0 {
		questionCount = 10
	}
	if attempts < 1 {
		attempts = 1
	}

	base := float64(QuizBaseXP) * (float64(questionCount) / 10)
	scoreMultiplier := clampScore(score) / 100
	attemptMultiplier := math.Max(1-float64(attempts-1)*0.1, 0.5)

	timeBonus := 0.0
	if timeSpentMinutes/float64(questionCount) <= 1 {
		timeBonus = base * 0.15
	}

	total := int(math.Round(base*scoreMultiplier*attemptMultiplier + timeBonus))
	if total < minQuizXP {
		return minQuizXP
	}
	return total
}

// CalculateGemsEarned converts session XP into gems, with streak and
// perfect-score bonuses. Minimum 1 gem per session.
func CalculateGemsEarned(xpEarned int, streak int, perfectScore bool) int {
	gems := xpEarned / 100

	if streak >= 7 {
		gems += 2
	} else if streak >= 3 {
		gems++
	}

	if perfectScore {
		gems += 3
	}

	if gems < 1 {
		return 1
	}
	return gems
}

// DailyActivities counts the activities that earn coins in a day.
type DailyActivities struct {
	ChaptersCompleted    int
	QuizzesCompleted     int
	ExperimentsCompleted int
	VideosWatched        int
	DailyLogin           bool
}

// CalculateCoinsEarned totals the coin rewards for a day's activities.
func CalculateCoinsEarned(a DailyActivities) int {
	coins := a.ChaptersCompleted*10 +
		a.QuizzesCompleted*5 +
		a.ExperimentsCompleted*15 +
		a.VideosWatched*3
	if a.DailyLogin {
		coins += 50
	}
	return coins
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
