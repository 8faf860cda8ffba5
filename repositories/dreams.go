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

type DreamRepository struct {
	col *mongo.Collection
}

func NewDreamRepository(db *mongo.Database) *DreamRepository {
	return &DreamRepository{col: db.Collection("dreams")}
}

// Insert stores a new dream and fills in its generated id and timestamps.
func (r *DreamRepository) Insert(ctx context.Context, d *models.Dream) (*models.Dream, error) {
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	if d.Likes == nil {
		d.Likes = []primitive.ObjectID{}
	}
	if d.Comments == nil {
		d.Comments = []models.Comment{}
	}

	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return d, nil
}

// FindByID returns a dream regardless of owner.
func (r *DreamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Dream, error) {
	var d models.Dream
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindOwned returns the dream only when it belongs to userID.
func (r *DreamRepository) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Dream, error) {
	var d models.Dream
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindOwnedByIDs returns the subset of ids that exist and belong to userID.
// Missing or foreign ids are simply absent from the result.
func (r *DreamRepository) FindOwnedByIDs(ctx context.Context, ids []primitive.ObjectID, userID primitive.ObjectID) ([]models.Dream, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "user_id": userID})
	if err != nil {
		return nil, err
	}
	var out []models.Dream
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByIDs returns dreams by id with no ownership filter.
func (r *DreamRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Dream, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []models.Dream
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAll returns every dream in the store.
func (r *DreamRepository) FindAll(ctx context.Context) ([]models.Dream, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []models.Dream
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByUser returns all dreams owned by userID.
func (r *DreamRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Dream, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var out []models.Dream
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindPublic returns public dreams newest-first by occurrence date.
func (r *DreamRepository) FindPublic(ctx context.Context) ([]models.Dream, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"is_public": true}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Dream
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOwned replaces the caller-editable content fields of an owned dream
// and returns the updated document.
func (r *DreamRepository) UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, d *models.Dream) (*models.Dream, error) {
	update := bson.M{"$set": bson.M{
		"date":       d.Date,
		"summary":    d.Summary,
		"categories": d.Categories,
		"tags":       d.Tags,
		"location":   d.Location,
		"moon_sign":  d.MoonSign,
		"is_public":  d.IsPublic,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Dream
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userID}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Save writes the full document back. Like/comment mutations go through this
// path deliberately: concurrent writers race as last-full-document-write-wins.
func (r *DreamRepository) Save(ctx context.Context, d *models.Dream) error {
	d.UpdatedAt = time.Now()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteOwned removes an owned dream.
func (r *DreamRepository) DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
