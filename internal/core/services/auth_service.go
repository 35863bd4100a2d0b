package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/SscSPs/fin_api/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/platform/config"
	"github.com/SscSPs/fin_api/internal/utils"
)

// tokenService implements the TokenSvcFacade for signing and verifying JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	accessToken, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return accessToken, expiresAt, nil
}

// ValidateAccessToken checks signature, expiry and issuer and returns the subject.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		s.LogDebug(ctx, "Rejected access token", slog.String("reason", err.Error()))
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return claims.Subject, nil
}

type authService struct {
	BaseService
	userRepo     portsrepo.UserReader
	tokenService portssvc.TokenSvcFacade
}

// NewAuthService creates the credential checker used by the login route.
func NewAuthService(userRepo portsrepo.UserReader, tokenService portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, tokenService: tokenService}
}

var (
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.AuthSvcFacade  = (*authService)(nil)
)

func (s *authService) AuthenticateUser(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Keep the unknown-email path as slow as a wrong password.
			utils.BurnPasswordCheck(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.LogInfo(ctx, "User authenticated", slog.String("user_id", user.UserID))
	return &domain.Session{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}
