package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dailyjournal-app/daily-journal/internal/models"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
)

func (s *Storage) CreateEntry(ctx context.Context, entry *models.JournalEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := s.entries.InsertOne(ctx, entry)
	return err
}

func (s *Storage) ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	findOptions := options.Find().SetSort(bson.M{"date": -1})

	cursor, err := s.entries.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.JournalEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Storage) UpdateEntry(ctx context.Context, userID, entryID, content, mood string) (*models.JournalEntry, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, storage.ErrEntryNotFound
	}

	// Joint match on _id and user_id: an entry owned by someone else is
	// reported exactly like a missing one.
	filter := bson.M{"_id": oid, "user_id": userID}
	update := bson.M{"$set": bson.M{"content": content, "mood": mood}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entry models.JournalEntry
	err = s.entries.FindOneAndUpdate(ctx, filter, update, opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Storage) DeleteEntry(ctx context.Context, userID, entryID string) error {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return storage.ErrEntryNotFound
	}

	res, err := s.entries.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrEntryNotFound
	}
	return nil
}
