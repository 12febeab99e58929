package models

import "time"

// QuizAttempt is a historical record of one quiz run. Attempts are never
// updated after creation.
type QuizAttempt struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	ChapterID      string    `bson:"chapter_id" json:"chapter_id"`
	TopicID        string    `bson:"topic_id" json:"topic_id"`
	SubjectID      string    `bson:"subject_id" json:"subject_id"`
	Subject        string    `bson:"subject" json:"subject"`
	Difficulty     string    `bson:"difficulty" json:"difficulty"`
	Score          float64   `bson:"score" json:"score"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	CorrectAnswers int       `bson:"correct_answers" json:"correct_answers"`
	TimeSpentMs    int64     `bson:"time_spent_ms" json:"time_spent_ms"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
