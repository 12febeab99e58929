package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, nil
}

func (r *ProgressRepository) FindByUserAndChapter(ctx context.Context, userID, chapterID string) (*models.Progress, error) {
	var p models.Progress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "chapter_id": chapterID}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the record keyed by (user, chapter), creating it on first
// interaction.
func (r *ProgressRepository) Upsert(ctx context.Context, p *models.Progress) error {
	filter := bson.M{"user_id": p.UserID, "chapter_id": p.ChapterID}
	update := bson.M{"$set": bson.M{
		"user_id":                  p.UserID,
		"chapter_id":               p.ChapterID,
		"topic_id":                 p.TopicID,
		"subject_id":               p.SubjectID,
		"video_progress":           p.VideoProgress,
		"notes_progress":           p.NotesProgress,
		"experiments_attempted":    p.ExperimentsAttempted,
		"total_experiments":        p.TotalExperiments,
		"overall_progress":         p.OverallProgress,
		"assessment_score_average": p.AssessmentScoreAverage,
		"is_completed":             p.IsCompleted,
		"completed_at":             p.CompletedAt,
		"last_accessed_at":         p.LastAccessedAt,
		"time_spent_ms":            p.TimeSpentMs,
		"xp":                       p.XP,
		"level":                    p.Level,
		"last_updated":             p.LastUpdated,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ProgressRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
