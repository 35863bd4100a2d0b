package services

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/SscSPs/fin_api/internal/dto"
)

// BalanceSvc derives balances from statement history.
type BalanceSvc interface {
	// ComputeBalance re-reads the user's statements and sums them.
	ComputeBalance(ctx context.Context, userID string) (*domain.Balance, error)
}

// StatementWriterSvc records deposits, withdrawals and transfers.
type StatementWriterSvc interface {
	// CreateStatement records a deposit or withdrawal for userID.
	CreateStatement(ctx context.Context, userID string, req dto.CreateStatementRequest) (*domain.Statement, error)

	// Transfer moves funds from fromUserID to req.ToUserID as two statements written atomically.
	Transfer(ctx context.Context, fromUserID string, req dto.TransferRequest) error
}

// StatementReaderSvc looks up individual statements.
type StatementReaderSvc interface {
	// GetStatementOperation returns a statement owned by userID.
	GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.Statement, error)
}

// StatementSvcFacade combines all statement-related service interfaces
type StatementSvcFacade interface {
	BalanceSvc
	StatementWriterSvc
	StatementReaderSvc
}
