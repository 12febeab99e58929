package repository

import (
	"context"

	"ekima-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubjectRepository struct {
	Col *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{Col: db.Collection("subjects")}
}

func (r *SubjectRepository) FindAll(ctx context.Context) ([]models.Subject, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subjects []models.Subject
	for cur.Next(ctx) {
		var s models.Subject
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	var s models.Subject
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	res, err := r.Col.InsertOne(ctx, subject)
	if err != nil {
		return err
	}
	subject.ID = insertedIDHex(res.InsertedID)
	return nil
}

func (r *SubjectRepository) Update(ctx context.Context, id string, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
