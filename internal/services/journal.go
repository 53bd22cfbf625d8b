package services

import (
	"context"
	"strings"
	"time"

	"github.com/dailyjournal-app/daily-journal/internal/models"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
	"github.com/dailyjournal-app/daily-journal/pkg/utils"
)

// JournalService is the entry CRUD contract. Every operation is scoped to
// the authenticated user ID; the owner of a new entry always comes from the
// session, never from the request body.
type JournalService struct {
	entries storage.EntryStorage
	cache   *JournalCache // optional, may be nil
}

func NewJournalService(entries storage.EntryStorage, cache *JournalCache) *JournalService {
	return &JournalService{entries: entries, cache: cache}
}

// Create persists a new entry for the user with the date set to now.
// Content is required; mood is taken as given (the client UI requires it,
// the service does not).
func (s *JournalService) Create(ctx context.Context, userID, content, mood string) (*models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &utils.ValidationError{Field: "content", Message: "Content is required"}
	}

	entry := &models.JournalEntry{
		UserID:  userID,
		Content: content,
		Mood:    mood,
		Date:    time.Now(),
	}
	if err := s.entries.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	return entry, nil
}

// List returns the user's entries, most recent first. Served from the cache
// when possible; a cache failure only means an extra trip to the store.
func (s *JournalService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	if entries, ok := s.cache.Get(ctx, userID); ok {
		return entries, nil
	}

	entries, err := s.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, userID, entries)
	return entries, nil
}

// Update replaces content and mood on the entry matching both the entry ID
// and the caller's user ID. Date, ID and owner never change.
func (s *JournalService) Update(ctx context.Context, userID, entryID, content, mood string) (*models.JournalEntry, error) {
	entry, err := s.entries.UpdateEntry(ctx, userID, entryID, content, mood)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	return entry, nil
}

// Delete removes the entry matching both IDs. Deleting a missing or
// foreign-owned entry reports storage.ErrEntryNotFound either way.
func (s *JournalService) Delete(ctx context.Context, userID, entryID string) error {
	if err := s.entries.DeleteEntry(ctx, userID, entryID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, userID)
	return nil
}
