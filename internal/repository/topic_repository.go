package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TopicRepository struct {
	Col *mongo.Collection
}

func NewTopicRepository(db *mongo.Database) *TopicRepository {
	return &TopicRepository{Col: db.Collection("topics")}
}

func (r *TopicRepository) FindAll(ctx context.Context) ([]models.Topic, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var topics []models.Topic
	for cur.Next(ctx) {
		var t models.Topic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func (r *TopicRepository) FindByID(ctx context.Context, id string) (*models.Topic, error) {
	var t models.Topic
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TopicRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.Topic, error) {
	cur, err := r.Col.Find(ctx, bson.M{"subject_id": subjectID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var topics []models.Topic
	for cur.Next(ctx) {
		var t models.Topic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func (r *TopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	res, err := r.Col.InsertOne(ctx, topic)
	if err != nil {
		return err
	}
	topic.ID = insertedIDHex(res.InsertedID)
	return nil
}

func (r *TopicRepository) Update(ctx context.Context, id string, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *TopicRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
