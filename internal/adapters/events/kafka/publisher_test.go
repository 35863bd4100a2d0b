package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishStatementRecorded(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newPublisher(writer)

	sender := "user-a"
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	events := []domain.StatementRecordedEvent{
		{StatementID: "s1", UserID: "user-a", Type: domain.Transfer, Amount: decimal.RequireFromString("-50"), OccurredAt: at},
		{StatementID: "s2", UserID: "user-b", Type: domain.Transfer, Amount: decimal.RequireFromString("50"), SenderID: &sender, OccurredAt: at},
	}

	require.NoError(t, publisher.PublishStatementRecorded(context.Background(), events...))
	require.Len(t, writer.msgs, 2)
	assert.Equal(t, "user-a", string(writer.msgs[0].Key))
	assert.Equal(t, "user-b", string(writer.msgs[1].Key))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(writer.msgs[1].Value, &decoded))
	assert.Equal(t, "s2", decoded["statement_id"])
	assert.Equal(t, "user-a", decoded["sender_id"])
	assert.Equal(t, "50", decoded["amount"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestPublishStatementRecorded_WriterError(t *testing.T) {
	publisher := newPublisher(&recordingWriter{err: errors.New("broker down")})
	err := publisher.PublishStatementRecorded(context.Background(), domain.StatementRecordedEvent{StatementID: "s1", UserID: "u"})
	assert.ErrorContains(t, err, "broker down")
}

func TestPublishStatementRecorded_NoEvents(t *testing.T) {
	writer := &recordingWriter{err: errors.New("should not be called")}
	assert.NoError(t, newPublisher(writer).PublishStatementRecorded(context.Background()))
}
