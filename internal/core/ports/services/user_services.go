package services

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/SscSPs/fin_api/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user's profile by ID. Returns apperrors.ErrUserNotFound when missing.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user. Returns apperrors.ErrUserAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
