package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"dream-journal/config"
	"dream-journal/internal/logger"
)

// Connect opens a Mongo client for the configured database and ensures the
// collection indexes. The returned handle is passed into repositories
// explicitly; there is no package-level client, so tests can construct
// isolated instances against their own databases.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	cl, err := mongo.NewClient(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := cl.Connect(connectCtx); err != nil {
		return nil, nil, err
	}
	if err := cl.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	database := cl.Database(cfg.Database)
	if err := ensureIndexes(connectCtx, database); err != nil {
		return nil, nil, err
	}
	logger.Log.Info("MongoDB connected and indexes ensured")
	return cl, database, nil
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// users: unique index on email
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}
		if _, err := d.Collection("users").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// dreams: owner lookup and public feed ordering
	{
		if _, err := d.Collection("dreams").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_user_id"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("dreams").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "is_public", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_public_date_desc"),
		}); err != nil {
			return err
		}
	}

	// ai_insights: owner lookup, dream back-references, newest-first listing
	{
		if _, err := d.Collection("ai_insights").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_user_id"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("ai_insights").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "dream_ids", Value: 1}},
			Options: options.Index().SetName("idx_dream_ids"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("ai_insights").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		}); err != nil {
			return err
		}
	}

	return nil
}
