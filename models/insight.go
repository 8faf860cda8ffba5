package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AIInsight stores one AI-generated interpretation referencing 1..N dreams.
// Collection: ai_insights
//
// DreamIDs is a non-owning reference: deleting a dream leaves stale ids here.
// MoonSign is a snapshot copied from the source dream at creation time for
// single-scope and manually saved insights, nil otherwise. Immutable after
// creation except for deletion by the owning user.
type AIInsight struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID   `bson:"user_id" json:"user_id"`
	DreamIDs  []primitive.ObjectID `bson:"dream_ids" json:"dream_ids"`
	Summary   string               `bson:"summary" json:"summary"`
	Tags      []string             `bson:"tags" json:"tags"`
	Scope     string               `bson:"scope" json:"scope"`
	Model     string               `bson:"model" json:"model"`
	MoonSign  *string              `bson:"moon_sign" json:"moon_sign"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
}
