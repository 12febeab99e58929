package service

import (
	"context"

	"ekima-service/internal/models"
	"ekima-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type SubjectService struct {
	Repo *repository.SubjectRepository
}

func NewSubjectService(repo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{Repo: repo}
}

func (s *SubjectService) GetAllSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.Repo.FindAll(ctx)
}

func (s *SubjectService) GetSubjectByID(ctx context.Context, id string) (*models.Subject, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return s.Repo.Create(ctx, subject)
}

func (s *SubjectService) UpdateSubject(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *SubjectService) DeleteSubject(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
