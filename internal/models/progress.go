package models

import "time"

// Progress is the per-(user, chapter) study record. It is upserted on every
// study interaction; percentage fields are kept in [0, 100].
type Progress struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	UserID    string `bson:"user_id" json:"user_id"`
	ChapterID string `bson:"chapter_id" json:"chapter_id"`
	TopicID   string `bson:"topic_id" json:"topic_id"`
	SubjectID string `bson:"subject_id" json:"subject_id"`

	VideoProgress          float64 `bson:"video_progress" json:"video_progress"`
	NotesProgress          float64 `bson:"notes_progress" json:"notes_progress"`
	ExperimentsAttempted   int     `bson:"experiments_attempted" json:"experiments_attempted"`
	TotalExperiments       int     `bson:"total_experiments" json:"total_experiments"`
	OverallProgress        float64 `bson:"overall_progress" json:"overall_progress"`
	AssessmentScoreAverage float64 `bson:"assessment_score_average" json:"assessment_score_average"`

	IsCompleted    bool       `bson:"is_completed" json:"is_completed"`
	CompletedAt    *time.Time `bson:"completed_at" json:"completed_at"`
	LastAccessedAt *time.Time `bson:"last_accessed_at" json:"last_accessed_at"`

	TimeSpentMs int64 `bson:"time_spent_ms" json:"time_spent_ms"`
	XP          int   `bson:"xp" json:"xp"`
	Level       int   `bson:"level" json:"level"`

	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
}

// ClampPercentages forces all percentage fields into [0, 100].
func (p *Progress) ClampPercentages() {
	p.VideoProgress = clampPercent(p.VideoProgress)
	p.NotesProgress = clampPercent(p.NotesProgress)
	p.OverallProgress = clampPercent(p.OverallProgress)
	p.AssessmentScoreAverage = clampPercent(p.AssessmentScoreAverage)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
