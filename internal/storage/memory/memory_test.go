package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailyjournal-app/daily-journal/internal/models"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
)

func TestCreateUser_Duplicate(t *testing.T) {
	store := New()
	ctx := context.Background()

	err := store.CreateUser(ctx, &models.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	err = store.CreateUser(ctx, &models.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestGetUserByUsername(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &models.User{ID: "u1", Username: "alice", Password: "hash"}))

	user, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "hash", user.Password)

	_, err = store.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestCreateEntry_AssignsID(t *testing.T) {
	store := New()
	ctx := context.Background()

	entry := &models.JournalEntry{UserID: "u1", Content: "hello", Date: time.Now()}
	require.NoError(t, store.CreateEntry(ctx, entry))
	assert.False(t, entry.ID.IsZero())
}

func TestListEntries_SortedAndScoped(t *testing.T) {
	store := New()
	ctx := context.Background()

	now := time.Now()
	older := &models.JournalEntry{UserID: "u1", Content: "older", Date: now.Add(-time.Hour)}
	newer := &models.JournalEntry{UserID: "u1", Content: "newer", Date: now}
	foreign := &models.JournalEntry{UserID: "u2", Content: "foreign", Date: now}
	require.NoError(t, store.CreateEntry(ctx, older))
	require.NoError(t, store.CreateEntry(ctx, newer))
	require.NoError(t, store.CreateEntry(ctx, foreign))

	entries, err := store.ListEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Content)
	assert.Equal(t, "older", entries[1].Content)
}

func TestListEntries_EmptyIsNotError(t *testing.T) {
	store := New()

	entries, err := store.ListEntries(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestUpdateEntry_JointMatch(t *testing.T) {
	store := New()
	ctx := context.Background()

	entry := &models.JournalEntry{UserID: "u1", Content: "before", Mood: "calm", Date: time.Now()}
	require.NoError(t, store.CreateEntry(ctx, entry))

	updated, err := store.UpdateEntry(ctx, "u1", entry.ID.Hex(), "after", "happy")
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
	assert.Equal(t, "happy", updated.Mood)
	assert.Equal(t, entry.ID, updated.ID)
	assert.Equal(t, entry.Date, updated.Date)

	// Another user cannot reach the entry, and neither can a made-up ID.
	_, err = store.UpdateEntry(ctx, "u2", entry.ID.Hex(), "stolen", "smug")
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	_, err = store.UpdateEntry(ctx, "u1", primitive.NewObjectID().Hex(), "x", "y")
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestDeleteEntry_JointMatch(t *testing.T) {
	store := New()
	ctx := context.Background()

	entry := &models.JournalEntry{UserID: "u1", Content: "bye", Date: time.Now()}
	require.NoError(t, store.CreateEntry(ctx, entry))

	err := store.DeleteEntry(ctx, "u2", entry.ID.Hex())
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	require.NoError(t, store.DeleteEntry(ctx, "u1", entry.ID.Hex()))

	// Deleting again is the same as deleting something that never existed.
	err = store.DeleteEntry(ctx, "u1", entry.ID.Hex())
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}
