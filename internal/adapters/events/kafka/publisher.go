// Package kafka publishes ledger events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/fin_api/internal/core/domain"
	portsevents "github.com/SscSPs/fin_api/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
}

var _ portsevents.StatementPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher writing to topic on brokers.
// Messages are keyed by user ID so one user's events stay ordered within a partition.
func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	})
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishStatementRecorded(ctx context.Context, events ...domain.StatementRecordedEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode event for statement %s: %w", event.StatementID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.UserID),
			Value: data,
			Time:  event.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write %d statement events: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
