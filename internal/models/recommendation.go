package models

import "time"

// Recommendation is a persisted recommendation shown to the user, with
// feedback fields filled in after the fact.
type Recommendation struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	TopicID       string    `bson:"topic_id" json:"topic_id"`
	TopicName     string    `bson:"topic_name" json:"topic_name"`
	Subject       string    `bson:"subject" json:"subject"`
	Difficulty    string    `bson:"difficulty" json:"difficulty"`
	EstimatedTime string    `bson:"estimated_time" json:"estimated_time"`
	Reasons       []string  `bson:"reasons" json:"reasons"`
	Confidence    float64   `bson:"confidence" json:"confidence"`
	Score         float64   `bson:"score" json:"score"`
	ContentTypes  []string  `bson:"content_types" json:"content_types"`
	Priority      int       `bson:"priority" json:"priority"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	Used          bool      `bson:"used" json:"used"`
	Feedback      string    `bson:"feedback" json:"feedback"`
}
