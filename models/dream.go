package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is one entry in a dream's ordered comment thread.
type Comment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Text   string             `bson:"text" json:"text"`
	Date   time.Time          `bson:"date" json:"date"`

	// User carries the resolved commenter projection on read paths that
	// denormalize display data. Never persisted.
	User *PublicUser `bson:"-" json:"user,omitempty"`
}

// Dream represents a journal entry owned by exactly one user.
// Collection: dreams
//
// Likes has set semantics: a user id appears at most once, and liking twice
// toggles back to unliked. Comments keep insertion order.
type Dream struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID   `bson:"user_id" json:"user_id"`
	Date       time.Time            `bson:"date" json:"date"`
	Summary    string               `bson:"summary" json:"summary"`
	Categories []string             `bson:"categories" json:"categories"`
	Tags       []string             `bson:"tags" json:"tags"`
	Location   string               `bson:"location" json:"location"`
	MoonSign   string               `bson:"moon_sign,omitempty" json:"moon_sign,omitempty"`
	IsPublic   bool                 `bson:"is_public" json:"is_public"`
	Likes      []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments   []Comment            `bson:"comments" json:"comments"`
	CreatedAt  time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updated_at"`
}

// HasLike reports whether userID is in the like set.
func (d *Dream) HasLike(userID primitive.ObjectID) bool {
	for _, id := range d.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike flips userID's membership in the like set.
func (d *Dream) ToggleLike(userID primitive.ObjectID) {
	for i, id := range d.Likes {
		if id == userID {
			d.Likes = append(d.Likes[:i], d.Likes[i+1:]...)
			return
		}
	}
	d.Likes = append(d.Likes, userID)
}
