package progress

import (
	"sort"
	"time"
)

// StreakInfo summarizes a user's study-day streaks. Day boundaries are UTC
// calendar days.
type StreakInfo struct {
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastStudyDate *time.Time `json:"last_study_date"`
}

// CalculateStreak computes current and longest streaks from a study-date
// history. The current streak only counts if the most recent study day is
// asOf's day or the day before; the longest streak is the longest run of
// consecutive days anywhere in the history.
func CalculateStreak(history []time.Time, asOf time.Time) StreakInfo {
	if len(history) == 0 {
		return StreakInfo{}
	}

	// Collapse to unique UTC days, newest first.
	daySet := make(map[time.Time]struct{}, len(history))
	for _, t := range history {
		daySet[dayUTC(t)] = struct{}{}
	}
	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	last := days[0]
	lastStudy := last

	today := dayUTC(asOf)
	yesterday := today.AddDate(0, 0, -1)

	current := 0
	if last.Equal(today) || last.Equal(yesterday) {
		check := last
		for _, d := range days {
			if d.Equal(check) {
				current++
				check = check.AddDate(0, 0, -1)
			} else {
				break
			}
		}
	}

	longest := 0
	run := 0
	var prev time.Time
	for i, d := range days {
		if i == 0 || prev.Sub(d) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	return StreakInfo{
		CurrentStreak: current,
		LongestStreak: longest,
		LastStudyDate: &lastStudy,
	}
}

func dayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
