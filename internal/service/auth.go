package service

import (
	"context"
	"errors"
	"strings"

	"github.com/openhire/jobboard-api/internal/database"
	"github.com/openhire/jobboard-api/internal/model"
	"github.com/openhire/jobboard-api/internal/token"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// bcrypt rejects inputs longer than 72 bytes
	maxPasswordLength = 72
)

// UserRepository defines the interface for user credential storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// TokenIssuer defines the interface for bearer token creation and verification
type TokenIssuer interface {
	Issue(subject string) (string, error)
	Verify(tokenString string) (string, error)
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo UserRepository
	tokens   TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup creates a new user account with username/password
func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Hash:     hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index can still fire when two signups race past the
		// existence check above.
		if errors.Is(err, database.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a bearer token. A missing user and a
// wrong password both return ErrInvalidCredentials so the response does not
// reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}

// AuthenticateToken verifies a bearer token and resolves its subject to the
// stored user. Tokens whose subject no longer exists are rejected.
func (s *AuthService) AuthenticateToken(ctx context.Context, tokenString string) (*model.User, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, token.ErrMalformed
	}
	return user, nil
}

// validatePassword enforces password constraints
func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
