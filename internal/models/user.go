package models

import "time"

type UserPreferences struct {
	Theme        string `bson:"theme" json:"theme"`
	ColorScheme  string `bson:"color_scheme" json:"color_scheme"`
	FontSize     string `bson:"font_size" json:"font_size"`
	HighContrast bool   `bson:"high_contrast" json:"high_contrast"`
	CompactMode  bool   `bson:"compact_mode" json:"compact_mode"`
}

type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`

	Name       string   `bson:"name" json:"name"`
	Role       string   `bson:"role" json:"role"`
	AgeGroup   string   `bson:"age_group" json:"age_group"`
	Region     string   `bson:"region" json:"region"`
	School     string   `bson:"school" json:"school"`
	Level      string   `bson:"level" json:"level"`
	Grade      string   `bson:"grade" json:"grade"`
	Interests  []string `bson:"interests" json:"interests"`
	DeviceType string   `bson:"device_type" json:"device_type"`

	Preferences UserPreferences `bson:"preferences" json:"preferences"`

	JoinedAt     time.Time `bson:"joined_at" json:"joined_at"`
	LastLoginAt  time.Time `bson:"last_login_at" json:"last_login_at"`
	LastActiveAt time.Time `bson:"last_active_at" json:"last_active_at"`
	TimeSpentMs  int64     `bson:"time_spent_ms" json:"time_spent_ms"`

	CurrentStreak  int        `bson:"current_streak" json:"current_streak"`
	LongestStreak  int        `bson:"longest_streak" json:"longest_streak"`
	LastStreakDate *time.Time `bson:"last_streak_date" json:"last_streak_date"`

	Coins       int `bson:"coins" json:"coins"`
	Gems        int `bson:"gems" json:"gems"`
	XP          int `bson:"xp" json:"xp"`
	LevelNumber int `bson:"level_number" json:"level_number"`
}

// RecordDailyActivity updates the streak counters for an activity on the
// given day. Same-day activity is counted once; a one-day gap extends the
// streak, anything longer resets it to 1.
func (u *User) RecordDailyActivity(activityDate time.Time) {
	today := startOfDayUTC(activityDate)

	if u.LastStreakDate == nil {
		u.CurrentStreak = 1
	} else {
		last := startOfDayUTC(*u.LastStreakDate)
		diffDays := int(today.Sub(last).Hours() / 24)
		switch {
		case diffDays == 0:
			u.LastActiveAt = activityDate
			return
		case diffDays == 1:
			u.CurrentStreak++
		default:
			u.CurrentStreak = 1
		}
	}

	if u.CurrentStreak > u.LongestStreak {
		u.LongestStreak = u.CurrentStreak
	}
	u.LastStreakDate = &today
	u.LastActiveAt = activityDate
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
