package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ChapterRepository struct {
	Col *mongo.Collection
}

func NewChapterRepository(db *mongo.Database) *ChapterRepository {
	return &ChapterRepository{Col: db.Collection("chapters")}
}

func (r *ChapterRepository) FindByID(ctx context.Context, id string) (*models.Chapter, error) {
	var c models.Chapter
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChapterRepository) FindByTopic(ctx context.Context, topicID string) ([]models.Chapter, error) {
	cur, err := r.Col.Find(ctx, bson.M{"topic_id": topicID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var chapters []models.Chapter
	for cur.Next(ctx) {
		var c models.Chapter
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}
	return chapters, nil
}
