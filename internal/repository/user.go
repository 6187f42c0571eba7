package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/openhire/jobboard-api/internal/database"
	"github.com/openhire/jobboard-api/internal/model"
)

// UserRepository handles user credential data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user record. The username carries a unique index so
// concurrent signups for the same name cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			username: $username,
			hash: $hash
		}
	`

	vars := map[string]interface{}{
		"username": user.Username,
		"hash":     user.Hash,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return err
	}

	if created, ok := extractQueryResults(result); ok && len(created) > 0 {
		if data, ok := created[0].(map[string]interface{}); ok {
			user.ID = convertSurrealID(data["id"])
		}
	}
	return nil
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when no
// such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUserResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func parseUserResult(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.User{
		ID:       convertSurrealID(data["id"]),
		Username: getString(data, "username"),
		Hash:     getString(data, "hash"),
	}, nil
}
