package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailyjournal-app/daily-journal/internal/models"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
)

// Store keeps users and entries in process memory. It honours the same
// joint-match rules as the Mongo implementation and backs the tests plus
// storeless local runs.
type Store struct {
	mu      sync.RWMutex
	users   map[string]models.User         // keyed by normalized username
	entries map[string]models.JournalEntry // keyed by entry ID hex
}

var _ storage.UserStorage = (*Store)(nil)
var _ storage.EntryStorage = (*Store)(nil)

func New() *Store {
	return &Store{
		users:   make(map[string]models.User),
		entries: make(map[string]models.JournalEntry),
	}
}

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return storage.ErrUserExists
	}
	s.users[user.Username] = *user
	return nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) CreateEntry(_ context.Context, entry *models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.entries[entry.ID.Hex()] = *entry
	return nil
}

func (s *Store) ListEntries(_ context.Context, userID string) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.JournalEntry, 0)
	for _, entry := range s.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (s *Store) UpdateEntry(_ context.Context, userID, entryID, content, mood string) (*models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[entryID]
	if !ok || entry.UserID != userID {
		return nil, storage.ErrEntryNotFound
	}
	entry.Content = content
	entry.Mood = mood
	s.entries[entryID] = entry
	return &entry, nil
}

func (s *Store) DeleteEntry(_ context.Context, userID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[entryID]
	if !ok || entry.UserID != userID {
		return storage.ErrEntryNotFound
	}
	delete(s.entries, entryID)
	return nil
}
