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
	portsevents "github.com/SscSPs/fin_api/internal/core/ports/events"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/dto"
	"github.com/SscSPs/fin_api/internal/utils/accounting"
	"github.com/google/uuid"
)

// defaultPublishTimeout bounds how long a committed operation waits on the event publisher.
const defaultPublishTimeout = 2 * time.Second

type statementService struct {
	*balanceService
	BaseService
	statementRepo  portsrepo.StatementRepositoryWithTx
	publisher      portsevents.StatementPublisher
	publishTimeout time.Duration
	now            func() time.Time
}

// StatementServiceOption is a function that configures a statementService
type StatementServiceOption func(*statementService)

// WithStatementPublisher sets the publisher notified after statements commit.
func WithStatementPublisher(publisher portsevents.StatementPublisher) StatementServiceOption {
	return func(s *statementService) {
		s.publisher = publisher
	}
}

// WithPublishTimeout bounds each publish call. Non-positive values keep the default.
func WithPublishTimeout(timeout time.Duration) StatementServiceOption {
	return func(s *statementService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

// WithClock overrides the time source used to stamp statements.
func WithClock(now func() time.Time) StatementServiceOption {
	return func(s *statementService) {
		s.now = now
	}
}

// NewStatementService creates the statement use cases.
func NewStatementService(
	userRepo portsrepo.UserReader,
	statementRepo portsrepo.StatementRepositoryWithTx,
	options ...StatementServiceOption,
) portssvc.StatementSvcFacade {
	svc := &statementService{
		balanceService: newBalanceService(userRepo, statementRepo),
		statementRepo:  statementRepo,
		publishTimeout: defaultPublishTimeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func (s *statementService) CreateStatement(ctx context.Context, userID string, req dto.CreateStatementRequest) (*domain.Statement, error) {
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.Type != domain.Deposit && req.Type != domain.Withdraw {
		return nil, fmt.Errorf("%w: operation type must be deposit or withdraw, got '%s'", apperrors.ErrValidation, req.Type)
	}

	stmt := domain.Statement{
		StatementID: uuid.NewString(),
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
	}

	err := s.statementRepo.RunInUserLock(ctx, []string{userID}, func(ctx context.Context, repo portsrepo.StatementRepositoryFacade) error {
		if req.Type == domain.Withdraw {
			_, balance, err := balanceOf(ctx, repo, userID)
			if err != nil {
				return err
			}
			if balance.LessThan(req.Amount) {
				return apperrors.ErrInsufficientFunds
			}
		}
		stmt.CreatedAt = s.now()
		return repo.SaveStatements(ctx, stmt)
	})
	if err != nil {
		return nil, s.lockedOpError(ctx, err, "Failed to record statement", slog.String("user_id", userID), slog.String("type", string(req.Type)))
	}

	s.LogInfo(ctx, "Statement recorded",
		slog.String("statement_id", stmt.StatementID),
		slog.String("user_id", userID),
		slog.String("type", string(stmt.Type)),
		slog.String("amount", stmt.Amount.String()))
	s.publish(ctx, stmt)
	return &stmt, nil
}

func (s *statementService) Transfer(ctx context.Context, fromUserID string, req dto.TransferRequest) error {
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.ToUserID == "" {
		return fmt.Errorf("%w: recipient is required", apperrors.ErrValidation)
	}
	if req.ToUserID == fromUserID {
		return fmt.Errorf("%w: cannot transfer to yourself", apperrors.ErrValidation)
	}

	description := strings.TrimSpace(req.Description)
	sender := fromUserID
	debit := domain.Statement{
		StatementID: uuid.NewString(),
		UserID:      fromUserID,
		Type:        domain.Transfer,
		Amount:      req.Amount.Neg(),
		Description: description,
	}
	credit := domain.Statement{
		StatementID: uuid.NewString(),
		UserID:      req.ToUserID,
		Type:        domain.Transfer,
		Amount:      req.Amount,
		Description: description,
		SenderID:    &sender,
	}

	err := s.statementRepo.RunInUserLock(ctx, []string{fromUserID, req.ToUserID}, func(ctx context.Context, repo portsrepo.StatementRepositoryFacade) error {
		_, balance, err := balanceOf(ctx, repo, fromUserID)
		if err != nil {
			return err
		}
		if balance.LessThan(req.Amount) {
			return apperrors.ErrInsufficientFunds
		}
		now := s.now()
		debit.CreatedAt = now
		credit.CreatedAt = now
		return repo.SaveStatements(ctx, debit, credit)
	})
	if err != nil {
		return s.lockedOpError(ctx, err, "Failed to transfer",
			slog.String("from_user_id", fromUserID),
			slog.String("to_user_id", req.ToUserID))
	}

	s.LogInfo(ctx, "Transfer recorded",
		slog.String("from_user_id", fromUserID),
		slog.String("to_user_id", req.ToUserID),
		slog.String("amount", req.Amount.String()))
	s.publish(ctx, debit, credit)
	return nil
}

func (s *statementService) GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	stmt, err := s.statementRepo.FindStatementForUser(ctx, userID, statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrStatementNotFound
		}
		s.LogError(ctx, err, "Failed to find statement", slog.String("statement_id", statementID))
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return stmt, nil
}

// lockedOpError maps errors out of a serialized section. A missing user is the only
// ErrNotFound the section can raise.
func (s *statementService) lockedOpError(ctx context.Context, err error, msg string, keyvals ...any) error {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return apperrors.ErrInsufficientFunds
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.ErrUserNotFound
	}
	s.LogError(ctx, err, msg, keyvals...)
	return fmt.Errorf("statement operation failed: %w", err)
}

// publish emits one event per committed statement. Failures are logged only.
// The request deadline is dropped since the write already committed; publishTimeout bounds the wait instead.
func (s *statementService) publish(ctx context.Context, statements ...domain.Statement) {
	if s.publisher == nil {
		return
	}
	events := make([]domain.StatementRecordedEvent, len(statements))
	for i, stmt := range statements {
		events[i] = domain.NewStatementRecordedEvent(stmt)
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishStatementRecorded(publishCtx, events...); err != nil {
		s.LogError(ctx, err, "Failed to publish statement events", slog.Int("count", len(events)))
	}
}
