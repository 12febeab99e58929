package service

import (
	"context"

	"ekima-service/internal/models"
	"ekima-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type TopicService struct {
	Repo *repository.TopicRepository
}

func NewTopicService(repo *repository.TopicRepository) *TopicService {
	return &TopicService{Repo: repo}
}

func (s *TopicService) GetAllTopics(ctx context.Context) ([]models.Topic, error) {
	return s.Repo.FindAll(ctx)
}

func (s *TopicService) GetTopicByID(ctx context.Context, id string) (*models.Topic, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *TopicService) GetTopicsBySubject(ctx context.Context, subjectID string) ([]models.Topic, error) {
	return s.Repo.FindBySubject(ctx, subjectID)
}

func (s *TopicService) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return s.Repo.Create(ctx, topic)
}

func (s *TopicService) UpdateTopic(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *TopicService) DeleteTopic(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
