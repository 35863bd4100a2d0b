package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/SscSPs/fin_api/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type balanceService struct {
	BaseService
	userRepo      portsrepo.UserReader
	statementRepo portsrepo.StatementReader
}

// NewBalanceService creates the balance calculator. Balances are never cached.
func NewBalanceService(userRepo portsrepo.UserReader, statementRepo portsrepo.StatementReader) portssvc.BalanceSvc {
	return newBalanceService(userRepo, statementRepo)
}

func newBalanceService(userRepo portsrepo.UserReader, statementRepo portsrepo.StatementReader) *balanceService {
	return &balanceService{userRepo: userRepo, statementRepo: statementRepo}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) ComputeBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	statements, balance, err := balanceOf(ctx, s.statementRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance", slog.String("user_id", userID))
		return nil, err
	}

	s.LogDebug(ctx, "Balance computed", slog.String("user_id", userID), slog.Int("statements", len(statements)))
	return &domain.Balance{UserID: userID, Balance: balance, Statements: statements}, nil
}

func (s *balanceService) ensureUser(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	return nil
}

// balanceOf reads the user's history through repo and reduces it. Inside a serialized
// section repo is the section's repository so the result reflects uncommitted writes.
func balanceOf(ctx context.Context, repo portsrepo.StatementReader, userID string) ([]domain.Statement, decimal.Decimal, error) {
	statements, err := repo.ListStatementsByUserID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list statements: %w", err)
	}
	sum, err := accounting.SumStatements(statements)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return statements, sum, nil
}
