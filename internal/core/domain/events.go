package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRecordedEvent is emitted once per statement after it has been committed.
type StatementRecordedEvent struct {
	StatementID string          `json:"statement_id"`
	UserID      string          `json:"user_id"`
	Type        OperationType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	SenderID    *string         `json:"sender_id,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// NewStatementRecordedEvent builds the event for a committed statement.
func NewStatementRecordedEvent(s Statement) StatementRecordedEvent {
	return StatementRecordedEvent{
		StatementID: s.StatementID,
		UserID:      s.UserID,
		Type:        s.Type,
		Amount:      s.Amount,
		SenderID:    s.SenderID,
		OccurredAt:  s.CreatedAt,
	}
}
