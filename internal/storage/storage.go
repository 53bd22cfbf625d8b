package storage

import (
	"context"
	"errors"

	"github.com/dailyjournal-app/daily-journal/internal/models"
)

// Common storage errors
var (
	// ErrUserExists indicates that a user with this username already exists
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrEntryNotFound indicates that no entry matched both the entry ID and
	// the owner ID. A missing entry and an entry owned by another user are
	// deliberately indistinguishable.
	ErrEntryNotFound = errors.New("entry not found")
)

// UserStorage persists account records.
type UserStorage interface {
	// CreateUser creates a new user.
	// Returns ErrUserExists if the username is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by normalized username.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// EntryStorage persists journal entries. Update and delete take effect only
// when both the entry ID and the owner ID match.
type EntryStorage interface {
	// CreateEntry persists a new entry and fills in its generated ID.
	CreateEntry(ctx context.Context, entry *models.JournalEntry) error

	// ListEntries returns the user's entries ordered by date descending.
	// A user with no entries gets an empty slice, not an error.
	ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// UpdateEntry replaces content and mood on the entry matching both IDs,
	// leaving date, ID and owner untouched, and returns the updated entry.
	// Returns ErrEntryNotFound when nothing matched.
	UpdateEntry(ctx context.Context, userID, entryID, content, mood string) (*models.JournalEntry, error)

	// DeleteEntry removes the entry matching both IDs.
	// Returns ErrEntryNotFound when nothing matched, including repeat deletes.
	DeleteEntry(ctx context.Context, userID, entryID string) error
}
