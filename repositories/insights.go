package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dream-journal/models"
)

type InsightRepository struct {
	col *mongo.Collection
}

func NewInsightRepository(db *mongo.Database) *InsightRepository {
	return &InsightRepository{col: db.Collection("ai_insights")}
}

// Insert stores a new insight and fills in its generated id and timestamp.
func (r *InsightRepository) Insert(ctx context.Context, in *models.AIInsight) (*models.AIInsight, error) {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}

	res, err := r.col.InsertOne(ctx, in)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		in.ID = oid
	}
	return in, nil
}

// FindByDreamAndUser returns the caller's insights referencing dreamID,
// newest first.
func (r *InsightRepository) FindByDreamAndUser(ctx context.Context, dreamID, userID primitive.ObjectID) ([]models.AIInsight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"dream_ids": dreamID, "user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	out := []models.AIInsight{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOwned removes an insight only when it belongs to userID.
func (r *InsightRepository) DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
