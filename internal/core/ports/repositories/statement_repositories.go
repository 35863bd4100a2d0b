package repositories

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
)

// StatementReader defines read operations for statement data
type StatementReader interface {
	// ListStatementsByUserID returns the user's full history ordered by creation time, oldest first.
	ListStatementsByUserID(ctx context.Context, userID string) ([]domain.Statement, error)

	// FindStatementForUser retrieves a statement only if it belongs to userID.
	// Returns apperrors.ErrNotFound otherwise.
	FindStatementForUser(ctx context.Context, userID, statementID string) (*domain.Statement, error)
}

// StatementWriter defines write operations for statement data. Statements are append-only.
type StatementWriter interface {
	// SaveStatements appends one or more statements as a single atomic unit.
	SaveStatements(ctx context.Context, statements ...domain.Statement) error
}

// StatementRepositoryFacade combines all statement-related repository interfaces
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
}
