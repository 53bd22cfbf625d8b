package models

import "time"

// User is an account record. Usernames are stored normalized (lowercase)
// and must be unique across all users.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"` // argon2id hash, never returned in JSON
}
