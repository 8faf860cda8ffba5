package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document.
// Collection: users (unique index on email)
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Username  string             `bson:"username" json:"username"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// PublicUser is the denormalized display projection attached to feed dreams
// and comments.
type PublicUser struct {
	ID       string `bson:"_id" json:"id"`
	Username string `bson:"username" json:"username"`
	Avatar   string `bson:"avatar" json:"avatar"`
}

// AnonymousUser is the placeholder projection used when an owner reference
// cannot be resolved, and for the whole feed when resolution itself fails.
func AnonymousUser() PublicUser {
	return PublicUser{ID: "unknown", Username: "Anonymous", Avatar: ""}
}

// Public returns the display projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID.Hex(), Username: u.Username, Avatar: u.Avatar}
}
