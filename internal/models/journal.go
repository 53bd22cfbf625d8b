package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry is a single dated journal record owned by one user.
// UserID is set once at creation and never changes; every read and write
// of an entry is filtered by both ID and UserID.
type JournalEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"userId"`
	Content string             `bson:"content" json:"content"`
	Mood    string             `bson:"mood" json:"mood"`
	Date    time.Time          `bson:"date" json:"date"`
}
