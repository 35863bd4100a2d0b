package services

import (
	"context"
	"time"

	"github.com/SscSPs/fin_api/internal/core/domain"
)

// TokenSvcFacade signs and verifies bearer tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a token whose subject is the user's ID.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAccessToken verifies a token and returns its subject user ID.
	// Any failure is reported as apperrors.ErrUnauthorized.
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}

// AuthSvcFacade verifies credentials and opens sessions.
type AuthSvcFacade interface {
	// AuthenticateUser returns a session or apperrors.ErrInvalidCredentials. The error does not
	// reveal whether the email or the password was wrong.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.Session, error)
}
