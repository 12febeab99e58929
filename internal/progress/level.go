package progress

import "math"

const XPPerLevel = 1000

// LevelInfo describes where a user sits inside the level curve.
type LevelInfo struct {
	Level               int     `json:"level"`
	CurrentLevelXP      int     `json:"current_level_xp"`
	XPToNextLevel       int     `json:"xp_to_next_level"`
	ProgressToNextLevel float64 `json:"progress_to_next_level"`
	TotalXP             int     `json:"total_xp"`
}

// CalculateLevel derives the level from total XP. Levels are flat 1000 XP
// bands, so level = floor(xp/1000)+1. Negative XP is treated as 0.
func CalculateLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := totalXP/XPPerLevel + 1
	currentLevelXP := totalXP % XPPerLevel
	progress := float64(currentLevelXP) / float64(XPPerLevel) * 100

	return LevelInfo{
		Level:               level,
		CurrentLevelXP:      currentLevelXP,
		XPToNextLevel:       XPPerLevel - currentLevelXP,
		ProgressToNextLevel: math.Round(progress*100) / 100,
		TotalXP:             totalXP,
	}
}
