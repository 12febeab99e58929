package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateGamification writes back the XP, currency, streak and level fields
// after a study event.
func (r *UserRepository) UpdateGamification(ctx context.Context, u *models.User) error {
	update := bson.M{"$set": bson.M{
		"xp":               u.XP,
		"gems":             u.Gems,
		"coins":            u.Coins,
		"level_number":     u.LevelNumber,
		"current_streak":   u.CurrentStreak,
		"longest_streak":   u.LongestStreak,
		"last_streak_date": u.LastStreakDate,
		"last_active_at":   u.LastActiveAt,
		"time_spent_ms":    u.TimeSpentMs,
	}}
	res, err := r.Col.UpdateOne(ctx, idFilter(u.ID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
