package repositories

import (
	"context"

	"healthsync-service/internal/domain/entities"
)

// UserRepositoryContract defines the store operations for user accounts.
type UserRepositoryContract interface {
	// FindByOpenID returns the user with the given provider identity, or
	// (nil, nil) when no such user exists.
	FindByOpenID(ctx context.Context, openID string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
}
