// Package noop provides a publisher that discards events, used when no broker is configured.
package noop

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
	portsevents "github.com/SscSPs/fin_api/internal/core/ports/events"
)

type Publisher struct{}

var _ portsevents.StatementPublisher = Publisher{}

func NewPublisher() Publisher {
	return Publisher{}
}

func (Publisher) PublishStatementRecorded(context.Context, ...domain.StatementRecordedEvent) error {
	return nil
}

func (Publisher) Close() error {
	return nil
}
