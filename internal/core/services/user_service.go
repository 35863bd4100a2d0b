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
	"github.com/SscSPs/fin_api/internal/dto"
	"github.com/SscSPs/fin_api/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidation)
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, utils.MaxPasswordBytes)
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		s.LogError(ctx, err, "Failed to save user in repository")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created successfully", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}
