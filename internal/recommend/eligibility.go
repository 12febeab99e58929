package recommend

import (
	"strings"

	"ekima-service/internal/models"
)

// PrereqSentinel marks a prerequisite that is always considered satisfied.
const PrereqSentinel = "basic"

// EligibleTopics filters the catalog down to topics the user can start:
// completed topics are dropped (even when still listed in progress),
// in-progress topics always pass, and everything else must have every
// prerequisite satisfied by a completed chapter.
func EligibleTopics(topics []models.Topic, completed, inProgress []string) []models.Topic {
	completedSet := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		completedSet[id] = struct{}{}
	}
	inProgressSet := make(map[string]struct{}, len(inProgress))
	for _, id := range inProgress {
		inProgressSet[id] = struct{}{}
	}

	eligible := make([]models.Topic, 0, len(topics))
	for _, topic := range topics {
		if _, done := completedSet[topic.ID]; done {
			continue
		}
		if _, started := inProgressSet[topic.ID]; started {
			eligible = append(eligible, topic)
			continue
		}
		if prerequisitesMet(topic.Prerequisites, completed) {
			eligible = append(eligible, topic)
		}
	}
	return eligible
}

// prerequisitesMet reports whether every prerequisite is covered. A
// prerequisite counts as satisfied when some completed id contains it as a
// substring; the informal-tag matching is load-bearing, do not tighten it
// to exact id equality.
func prerequisitesMet(prerequisites, completed []string) bool {
	for _, prereq := range prerequisites {
		if prereq == PrereqSentinel {
			continue
		}
		satisfied := false
		for _, id := range completed {
			if strings.Contains(id, prereq) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// CompletedChapterIDs extracts the completed chapter ids from progress
// records.
func CompletedChapterIDs(progress []models.Progress) []string {
	var ids []string
	for _, p := range progress {
		if p.IsCompleted {
			ids = append(ids, p.ChapterID)
		}
	}
	return ids
}

// InProgressChapterIDs extracts chapter ids that are started but not done.
func InProgressChapterIDs(progress []models.Progress) []string {
	var ids []string
	for _, p := range progress {
		if !p.IsCompleted && p.OverallProgress > 0 {
			ids = append(ids, p.ChapterID)
		}
	}
	return ids
}
