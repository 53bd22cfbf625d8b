package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dailyjournal-app/daily-journal/internal/storage"
)

// Storage implements the storage interfaces on top of MongoDB.
// Users and journal entries live in two collections; entries are additionally
// indexed by owner so the dashboard list query stays cheap.
type Storage struct {
	users   *mongo.Collection
	entries *mongo.Collection
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.EntryStorage = (*Storage)(nil)

func New(db *mongo.Database) *Storage {
	return &Storage{
		users:   db.Collection("users"),
		entries: db.Collection("journal_entries"),
	}
}

// EnsureIndexes creates the unique username index and the per-user date
// index. Called once at startup.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users username index: %w", err)
	}

	_, err = s.entries.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("entries user/date index: %w", err)
	}

	return nil
}
