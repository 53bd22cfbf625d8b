package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dailyjournal-app/daily-journal/internal/jwt"
	"github.com/dailyjournal-app/daily-journal/internal/models"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
	"github.com/dailyjournal-app/daily-journal/pkg/utils"
)

// ErrInvalidCredentials is returned on login for an unknown username and for
// a wrong password alike, so the two cases can't be told apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService registers users and exchanges credentials for session tokens.
type AuthService struct {
	users  storage.UserStorage
	tokens *jwt.Service
}

func NewAuthService(users storage.UserStorage, tokens *jwt.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register validates the credentials, hashes the password and persists a new
// user. Returns the generated user ID, a *utils.ValidationError on malformed
// input, or storage.ErrUserExists on a duplicate username.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if err := utils.ValidateUsername(username); err != nil {
		return "", err
	}
	if len(password) < utils.MinPasswordLength {
		return "", &utils.ValidationError{Field: "password", Message: "Password must be at least 8 characters"}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Username:  utils.NormalizeUsername(username),
		Password:  hashedPassword,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// Login verifies the password against the stored hash and issues a signed
// session token embedding the user ID. Never writes to the store.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, utils.NormalizeUsername(username))
	if errors.Is(err, storage.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	valid, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !valid {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID)
}
