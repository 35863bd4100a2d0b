package repositories

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
)

// UserReader defines read operations for user data.
// Both finders return apperrors.ErrNotFound when no user matches.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their (case-insensitive) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the email is taken.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
