package models

import (
	"strconv"
	"strings"
)

type Topic struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	Name           string   `bson:"name" json:"name"`
	SubjectID      string   `bson:"subject_id" json:"subject_id"`
	Level          string   `bson:"level" json:"level"`
	EducationLevel string   `bson:"education_level" json:"education_level"`
	Syllabus       string   `bson:"syllabus" json:"syllabus"`
	IsFeatured     bool     `bson:"is_featured" json:"is_featured"`
	Description    string   `bson:"description" json:"description"`
	Language       string   `bson:"language" json:"language"`
	Difficulty     string   `bson:"difficulty" json:"difficulty"`
	EstimatedTime  string   `bson:"estimated_time" json:"estimated_time"`
	Prerequisites  []string `bson:"prerequisites" json:"prerequisites"`
	Objectives     []string `bson:"learning_objectives" json:"learning_objectives"`
	Chapters       []string `bson:"chapters" json:"chapters"`
}

// EstimatedMinutes parses the catalog's loosely typed estimate ("45",
// "45 min", "about 45 minutes"). Unparsable values fall back to the given
// default.
func (t *Topic) EstimatedMinutes(fallback int) int {
	s := strings.TrimSpace(t.EstimatedTime)
	if s == "" {
		return fallback
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	for _, field := range strings.Fields(s) {
		if n, err := strconv.Atoi(field); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

type Chapter struct {
	ID               string   `bson:"_id,omitempty" json:"id"`
	Name             string   `bson:"name" json:"name"`
	TopicID          string   `bson:"topic_id" json:"topic_id"`
	SubjectID        string   `bson:"subject_id" json:"subject_id"`
	Difficulty       string   `bson:"difficulty" json:"difficulty"`
	EstimatedMinutes int      `bson:"estimated_minutes" json:"estimated_minutes"`
	VideoIDs         []string `bson:"video_ids" json:"video_ids"`
	HasExperiments   bool     `bson:"has_experiments" json:"has_experiments"`
}

type Subject struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}
