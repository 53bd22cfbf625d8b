package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyjournal-app/daily-journal/internal/jwt"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
	"github.com/dailyjournal-app/daily-journal/internal/storage/memory"
	"github.com/dailyjournal-app/daily-journal/pkg/utils"
)

func newAuthService() (*AuthService, *jwt.Service) {
	tokens := jwt.NewService("test-secret", time.Hour)
	return NewAuthService(memory.New(), tokens), tokens
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	userID, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "otherpassword")
	assert.ErrorIs(t, err, storage.ErrUserExists)

	// Uniqueness is case-insensitive.
	_, err = svc.Register(ctx, "ALICE", "otherpassword")
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	var vErr *utils.ValidationError

	_, err := svc.Register(ctx, "ab", "password123")
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Register(ctx, "alice", "short")
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)
}

func TestLogin(t *testing.T) {
	svc, tokens := newAuthService()
	ctx := context.Background()

	userID, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	sub, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, sub)
}

func TestLogin_CaseInsensitiveUsername(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "Alice", "password123")
	assert.NoError(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	// Wrong password and unknown user look the same to the caller.
	_, err = svc.Login(ctx, "alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
