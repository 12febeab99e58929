package service

import (
	"context"
	"log"
	"time"

	"ekima-service/internal/event"
	"ekima-service/internal/models"
	"ekima-service/internal/progress"
	"ekima-service/internal/repository"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ChapterRepo  *repository.ChapterRepository
	UserRepo     *repository.UserRepository

	Publisher       *event.EventPublisher
	Recommendations *RecommendationService
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	chapterRepo *repository.ChapterRepository,
	userRepo *repository.UserRepository,
	publisher *event.EventPublisher,
	recommendations *RecommendationService,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:    progressRepo,
		ChapterRepo:     chapterRepo,
		UserRepo:        userRepo,
		Publisher:       publisher,
		Recommendations: recommendations,
	}
}

func (s *ProgressService) GetUserProgress(ctx context.Context, userID string) ([]models.Progress, error) {
	return s.ProgressRepo.FindByUser(ctx, userID)
}

func (s *ProgressService) GetChapterProgress(ctx context.Context, userID, chapterID string) (*models.Progress, error) {
	return s.ProgressRepo.FindByUserAndChapter(ctx, userID, chapterID)
}

// UpdateProgress upserts the study record for one chapter. The first update
// that marks the chapter completed awards XP, gems and coins, advances the
// user's streak, and may level the user up.
func (s *ProgressService) UpdateProgress(ctx context.Context, p *models.Progress) (*models.Progress, error) {
	p.ClampPercentages()
	now := time.Now()
	p.LastUpdated = now
	p.LastAccessedAt = &now

	existing, err := s.ProgressRepo.FindByUserAndChapter(ctx, p.UserID, p.ChapterID)
	alreadyCompleted := err == nil && existing != nil && existing.IsCompleted

	justCompleted := p.IsCompleted && !alreadyCompleted
	if justCompleted && p.CompletedAt == nil {
		p.CompletedAt = &now
	}

	if err := s.ProgressRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	if justCompleted {
		s.rewardCompletion(ctx, p, now)
	}

	if s.Publisher != nil {
		s.Publisher.Publish(event.ProgressUpdated, map[string]interface{}{
			"user_id":    p.UserID,
			"chapter_id": p.ChapterID,
			"progress":   p.OverallProgress,
		})
	}
	if s.Recommendations != nil {
		s.Recommendations.Invalidate(ctx, p.UserID)
	}
	return p, nil
}

func (s *ProgressService) rewardCompletion(ctx context.Context, p *models.Progress, now time.Time) {
	user, err := s.UserRepo.FindByID(ctx, p.UserID)
	if err != nil {
		log.Printf("loading user %s for completion rewards: %v", p.UserID, err)
		return
	}

	chapter := progress.ChapterInfo{Difficulty: "medium", EstimatedMinutes: 30}
	if s.ChapterRepo != nil {
		if c, err := s.ChapterRepo.FindByID(ctx, p.ChapterID); err == nil {
			chapter = progress.ChapterInfo{
				Difficulty:       c.Difficulty,
				EstimatedMinutes: c.EstimatedMinutes,
			}
		}
	}

	xpEarned, leveledUp := applyCompletionRewards(user, chapter, p, now)

	if err := s.UserRepo.UpdateGamification(ctx, user); err != nil {
		log.Printf("saving gamification for %s: %v", user.ID, err)
		return
	}

	if s.Publisher != nil {
		s.Publisher.Publish(event.ChapterCompleted, map[string]interface{}{
			"user_id":    p.UserID,
			"chapter_id": p.ChapterID,
			"xp_earned":  xpEarned,
		})
		if leveledUp {
			s.Publisher.Publish(event.UserLevelUp, map[string]interface{}{
				"user_id": p.UserID,
				"level":   user.LevelNumber,
			})
		}
	}
}

// applyCompletionRewards mutates the user's streak and gamification counters
// for one completed chapter and reports the XP earned and whether the user
// crossed a level boundary. The streak is advanced first so the XP streak
// bonus sees today's activity.
func applyCompletionRewards(user *models.User, chapter progress.ChapterInfo, p *models.Progress, now time.Time) (int, bool) {
	user.RecordDailyActivity(now)

	timeSpentMinutes := float64(p.TimeSpentMs) / 60000
	xpEarned := progress.CalculateChapterXP(chapter, timeSpentMinutes, p.AssessmentScoreAverage, user.CurrentStreak)

	before := progress.CalculateLevel(user.XP).Level
	user.XP += xpEarned
	after := progress.CalculateLevel(user.XP).Level
	user.LevelNumber = after

	user.Gems += progress.CalculateGemsEarned(xpEarned, user.CurrentStreak, p.AssessmentScoreAverage >= 100)
	user.Coins += progress.CalculateCoinsEarned(progress.DailyActivities{ChaptersCompleted: 1})

	return xpEarned, after > before
}
