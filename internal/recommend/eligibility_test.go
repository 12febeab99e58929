package recommend

import (
	"testing"

	"ekima-service/internal/models"
)

func topicIDs(topics []models.Topic) []string {
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}

func TestEligibleTopicsExcludesCompleted(t *testing.T) {
	topics := []models.Topic{
		{ID: "t1"},
		{ID: "t2"},
	}

	got := EligibleTopics(topics, []string{"t1"}, nil)
	if len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("Expected only t2, got %v", topicIDs(got))
	}

	// Completed wins even when the topic is also listed in progress.
	got = EligibleTopics(topics, []string{"t1"}, []string{"t1"})
	for _, topic := range got {
		if topic.ID == "t1" {
			t.Error("Completed topic must never be eligible, even when in progress")
		}
	}
}

func TestEligibleTopicsInProgressBypassesPrerequisites(t *testing.T) {
	topics := []models.Topic{
		{ID: "t1", Prerequisites: []string{"algebra_basics"}},
	}

	if got := EligibleTopics(topics, nil, nil); len(got) != 0 {
		t.Errorf("Expected gated topic excluded, got %v", topicIDs(got))
	}
	if got := EligibleTopics(topics, nil, []string{"t1"}); len(got) != 1 {
		t.Error("Expected in-progress topic included despite unmet prerequisites")
	}
}

func TestPrerequisiteGating(t *testing.T) {
	testCases := []struct {
		name      string
		prereqs   []string
		completed []string
		eligible  bool
	}{
		{"no prerequisites", nil, nil, true},
		{"unmet prerequisite", []string{"algebra_basics"}, []string{"geometry_101"}, false},
		{"substring match satisfies", []string{"algebra_basics"}, []string{"ch_algebra_basics_1"}, true},
		{"basic sentinel always passes", []string{"basic"}, nil, true},
		{"all must be satisfied", []string{"algebra_basics", "fractions"}, []string{"ch_algebra_basics_1"}, false},
		{"mixed sentinel and real", []string{"basic", "fractions"}, []string{"ch_fractions_2"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topics := []models.Topic{{ID: "t1", Prerequisites: tc.prereqs}}
			got := EligibleTopics(topics, tc.completed, nil)
			if (len(got) == 1) != tc.eligible {
				t.Errorf("Expected eligible=%v, got %v", tc.eligible, topicIDs(got))
			}
		})
	}
}

func TestProgressIDExtraction(t *testing.T) {
	progress := []models.Progress{
		{ChapterID: "ch1", IsCompleted: true},
		{ChapterID: "ch2", IsCompleted: false, OverallProgress: 40},
		{ChapterID: "ch3", IsCompleted: false, OverallProgress: 0},
	}

	completed := CompletedChapterIDs(progress)
	if len(completed) != 1 || completed[0] != "ch1" {
		t.Errorf("Expected [ch1], got %v", completed)
	}

	inProgress := InProgressChapterIDs(progress)
	if len(inProgress) != 1 || inProgress[0] != "ch2" {
		t.Errorf("Expected [ch2], got %v", inProgress)
	}
}
