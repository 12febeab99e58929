package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RecommendationRepository struct {
	Col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{Col: db.Collection("recommendations")}
}

// ReplaceForUser swaps out a user's stored recommendations for a freshly
// generated batch.
func (r *RecommendationRepository) ReplaceForUser(ctx context.Context, userID string, recs []models.Recommendation) error {
	if _, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID, "used": false}); err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(recs))
	for i := range recs {
		docs[i] = recs[i]
	}
	res, err := r.Col.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, insertedID := range res.InsertedIDs {
		recs[i].ID = insertedIDHex(insertedID)
	}
	return nil
}

func (r *RecommendationRepository) FindByUser(ctx context.Context, userID string) ([]models.Recommendation, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var recs []models.Recommendation
	for cur.Next(ctx) {
		var rec models.Recommendation
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *RecommendationRepository) MarkUsed(ctx context.Context, id string) error {
	res, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"used": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *RecommendationRepository) SaveFeedback(ctx context.Context, id, feedback string) error {
	res, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
