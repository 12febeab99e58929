package progress

import "testing"

func TestCalculateLevel(t *testing.T) {
	testCases := []struct {
		name          string
		totalXP       int
		expectedLevel int
		expectedInXP  int
		expectedToGo  int
	}{
		{"zero xp", 0, 1, 0, 1000},
		{"mid first level", 450, 1, 450, 550},
		{"exact level boundary", 1000, 2, 0, 1000},
		{"just past boundary", 1001, 2, 1, 999},
		{"several levels", 5500, 6, 500, 500},
		{"negative clamps to zero", -200, 1, 0, 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := CalculateLevel(tc.totalXP)
			if info.Level != tc.expectedLevel {
				t.Errorf("Expected level %d, got %d", tc.expectedLevel, info.Level)
			}
			if info.CurrentLevelXP != tc.expectedInXP {
				t.Errorf("Expected current level XP %d, got %d", tc.expectedInXP, info.CurrentLevelXP)
			}
			if info.XPToNextLevel != tc.expectedToGo {
				t.Errorf("Expected XP to next level %d, got %d", tc.expectedToGo, info.XPToNextLevel)
			}
		})
	}
}

func TestCalculateLevelBoundaries(t *testing.T) {
	// Every multiple of 1000 starts a fresh level with 0 progress.
	for k := 0; k <= 20; k++ {
		info := CalculateLevel(1000 * k)
		if info.Level != k+1 {
			t.Errorf("xp=%d: expected level %d, got %d", 1000*k, k+1, info.Level)
		}
		if info.CurrentLevelXP != 0 {
			t.Errorf("xp=%d: expected 0 in-level XP, got %d", 1000*k, info.CurrentLevelXP)
		}
		if info.ProgressToNextLevel != 0 {
			t.Errorf("xp=%d: expected 0%% progress, got %.2f", 1000*k, info.ProgressToNextLevel)
		}
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 10000; xp += 37 {
		level := CalculateLevel(xp).Level
		if level < prev {
			t.Fatalf("level decreased from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}
