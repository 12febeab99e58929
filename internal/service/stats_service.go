package service

import (
	"context"
	"time"

	"ekima-service/internal/models"
	"ekima-service/internal/progress"
	"ekima-service/internal/repository"
)

// UserStats is the aggregate dashboard payload.
type UserStats struct {
	Level   progress.LevelInfo          `json:"level"`
	Streak  progress.StreakInfo         `json:"streak"`
	Metrics progress.PerformanceMetrics `json:"metrics"`
	Coins   int                         `json:"coins"`
	Gems    int                         `json:"gems"`
}

type StatsService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	TopicRepo    *repository.TopicRepository
}

func NewStatsService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	topicRepo *repository.TopicRepository,
) *StatsService {
	return &StatsService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		TopicRepo:    topicRepo,
	}
}

// GetUserStats assembles level, streak and performance analytics for one
// user. The streak is recomputed from the study history rather than read
// from the stored counters, so stale counters self-correct.
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.ProgressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &UserStats{
		Level:   progress.CalculateLevel(user.XP),
		Streak:  progress.CalculateStreak(studyHistory(records), now),
		Metrics: progress.CalculatePerformanceMetrics(records, now),
		Coins:   user.Coins,
		Gems:    user.Gems,
	}, nil
}

// GetTopicCompletion reports per-chapter completion for one topic.
func (s *StatsService) GetTopicCompletion(ctx context.Context, userID, topicID string) (*progress.TopicCompletion, error) {
	topic, err := s.TopicRepo.FindByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	records, err := s.ProgressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	completion := progress.CalculateTopicCompletion(topic.Chapters, records)
	return &completion, nil
}

// studyHistory collects every timestamp that counts as a study event. One
// record can contribute up to three timestamps on the same day; CalculateStreak
// collapses the history to unique UTC days, so the duplicates are harmless.
func studyHistory(records []models.Progress) []time.Time {
	var history []time.Time
	for _, r := range records {
		if r.LastAccessedAt != nil {
			history = append(history, *r.LastAccessedAt)
		}
		if r.CompletedAt != nil {
			history = append(history, *r.CompletedAt)
		}
		if !r.LastUpdated.IsZero() {
			history = append(history, r.LastUpdated)
		}
	}
	return history
}
