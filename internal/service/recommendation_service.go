package service

import (
	"context"
	"log"

	"ekima-service/internal/cache"
	"ekima-service/internal/event"
	"ekima-service/internal/models"
	"ekima-service/internal/recommend"
	"ekima-service/internal/repository"
)

// RecommendationService runs the recommendation engine over the user's
// stored history and persists the result. Cache and publisher are optional;
// a nil value disables that concern.
type RecommendationService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	AttemptRepo  *repository.QuizAttemptRepository
	TopicRepo    *repository.TopicRepository
	SubjectRepo  *repository.SubjectRepository
	RecRepo      *repository.RecommendationRepository

	Cache     *cache.RecommendationCache
	Publisher *event.EventPublisher
	Engine    *recommend.Engine
}

func NewRecommendationService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	attemptRepo *repository.QuizAttemptRepository,
	topicRepo *repository.TopicRepository,
	subjectRepo *repository.SubjectRepository,
	recRepo *repository.RecommendationRepository,
	recCache *cache.RecommendationCache,
	publisher *event.EventPublisher,
) *RecommendationService {
	return &RecommendationService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		AttemptRepo:  attemptRepo,
		TopicRepo:    topicRepo,
		SubjectRepo:  subjectRepo,
		RecRepo:      recRepo,
		Cache:        recCache,
		Publisher:    publisher,
		Engine:       recommend.NewEngine(),
	}
}

// GenerateForUser returns the user's current recommendations, serving from
// cache when a fresh entry exists. Missing history is treated as empty so a
// brand-new user still gets a ranked list.
func (s *RecommendationService) GenerateForUser(ctx context.Context, userID string) ([]recommend.RecommendedTopic, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, userID); err != nil {
			log.Printf("recommendation cache read failed for %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		user = nil
	}
	progress, err := s.ProgressRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Printf("loading progress for %s: %v", userID, err)
	}
	attempts, err := s.AttemptRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Printf("loading quiz attempts for %s: %v", userID, err)
	}
	topics, err := s.TopicRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.SubjectRepo.FindAll(ctx)
	if err != nil {
		log.Printf("loading subjects: %v", err)
	}

	recs := s.Engine.Generate(user, progress, attempts, topics, subjects)

	if err := s.RecRepo.ReplaceForUser(ctx, userID, toRecords(userID, recs)); err != nil {
		log.Printf("persisting recommendations for %s: %v", userID, err)
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, userID, recs); err != nil {
			log.Printf("recommendation cache write failed for %s: %v", userID, err)
		}
	}
	if s.Publisher != nil {
		s.Publisher.Publish(event.RecommendationGenerated, map[string]interface{}{
			"user_id": userID,
			"count":   len(recs),
		})
	}
	return recs, nil
}

// GetStored returns the last persisted recommendation set without rerunning
// the engine.
func (s *RecommendationService) GetStored(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return s.RecRepo.FindByUser(ctx, userID)
}

func (s *RecommendationService) MarkUsed(ctx context.Context, id string) error {
	return s.RecRepo.MarkUsed(ctx, id)
}

func (s *RecommendationService) SaveFeedback(ctx context.Context, id, feedback string) error {
	return s.RecRepo.SaveFeedback(ctx, id, feedback)
}

// Invalidate drops the cached recommendation set so the next request
// recomputes it. Called whenever progress or attempts change.
func (s *RecommendationService) Invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		log.Printf("recommendation cache invalidation failed for %s: %v", userID, err)
	}
}

func toRecords(userID string, recs []recommend.RecommendedTopic) []models.Recommendation {
	records := make([]models.Recommendation, 0, len(recs))
	for _, r := range recs {
		records = append(records, models.Recommendation{
			UserID:        userID,
			TopicID:       r.TopicID,
			TopicName:     r.Name,
			Subject:       r.Subject,
			Difficulty:    r.Difficulty,
			EstimatedTime: r.EstimatedTime,
			Reasons:       r.Reasons,
			Confidence:    r.Confidence,
			Score:         r.Score,
			ContentTypes:  r.ContentTypes,
			Priority:      r.Priority,
			CreatedAt:     r.CreatedAt,
		})
	}
	return records
}
