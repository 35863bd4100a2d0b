package events

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
)

// StatementPublisher announces committed statements to downstream consumers.
type StatementPublisher interface {
	PublishStatementRecorded(ctx context.Context, events ...domain.StatementRecordedEvent) error
	Close() error
}
