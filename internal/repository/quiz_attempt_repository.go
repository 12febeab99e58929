package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuizAttemptRepository stores attempts as immutable history: create and
// read only, no updates.
type QuizAttemptRepository struct {
	Col *mongo.Collection
}

func NewQuizAttemptRepository(db *mongo.Database) *QuizAttemptRepository {
	return &QuizAttemptRepository{Col: db.Collection("quiz_attempts")}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	res, err := r.Col.InsertOne(ctx, attempt)
	if err != nil {
		return err
	}
	attempt.ID = insertedIDHex(res.InsertedID)
	return nil
}

func (r *QuizAttemptRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuizAttempt
	for cur.Next(ctx) {
		var a models.QuizAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

func (r *QuizAttemptRepository) FindByUserAndChapter(ctx context.Context, userID, chapterID string) ([]models.QuizAttempt, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID, "chapter_id": chapterID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuizAttempt
	for cur.Next(ctx) {
		var a models.QuizAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
