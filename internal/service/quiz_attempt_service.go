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

type QuizAttemptService struct {
	AttemptRepo *repository.QuizAttemptRepository
	UserRepo    *repository.UserRepository

	Publisher       *event.EventPublisher
	Recommendations *RecommendationService
}

func NewQuizAttemptService(
	attemptRepo *repository.QuizAttemptRepository,
	userRepo *repository.UserRepository,
	publisher *event.EventPublisher,
	recommendations *RecommendationService,
) *QuizAttemptService {
	return &QuizAttemptService{
		AttemptRepo:     attemptRepo,
		UserRepo:        userRepo,
		Publisher:       publisher,
		Recommendations: recommendations,
	}
}

func (s *QuizAttemptService) GetUserAttempts(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	return s.AttemptRepo.FindByUser(ctx, userID)
}

// SubmitAttempt records one quiz run and awards XP scaled by score, quiz
// length and the retake count for the chapter. Attempts are append-only.
func (s *QuizAttemptService) SubmitAttempt(ctx context.Context, attempt *models.QuizAttempt) (int, error) {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}

	prior, err := s.AttemptRepo.FindByUserAndChapter(ctx, attempt.UserID, attempt.ChapterID)
	if err != nil {
		log.Printf("counting prior attempts for %s/%s: %v", attempt.UserID, attempt.ChapterID, err)
	}
	attemptNumber := len(prior) + 1

	if err := s.AttemptRepo.Create(ctx, attempt); err != nil {
		return 0, err
	}

	timeSpentMinutes := float64(attempt.TimeSpentMs) / 60000
	xpEarned := progress.CalculateQuizXP(attempt.Score, attempt.TotalQuestions, timeSpentMinutes, attemptNumber)

	if user, err := s.UserRepo.FindByID(ctx, attempt.UserID); err == nil {
		user.RecordDailyActivity(attempt.CreatedAt)
		user.XP += xpEarned
		user.LevelNumber = progress.CalculateLevel(user.XP).Level
		user.Coins += progress.CalculateCoinsEarned(progress.DailyActivities{QuizzesCompleted: 1})
		if err := s.UserRepo.UpdateGamification(ctx, user); err != nil {
			log.Printf("saving gamification for %s: %v", user.ID, err)
		}
	}

	if s.Publisher != nil {
		s.Publisher.Publish(event.QuizAttempted, map[string]interface{}{
			"user_id":    attempt.UserID,
			"chapter_id": attempt.ChapterID,
			"score":      attempt.Score,
			"attempt":    attemptNumber,
			"xp_earned":  xpEarned,
		})
	}
	if s.Recommendations != nil {
		s.Recommendations.Invalidate(ctx, attempt.UserID)
	}
	return xpEarned, nil
}
