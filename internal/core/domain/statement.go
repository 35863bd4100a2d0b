package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType is the kind of monetary event a statement records.
type OperationType string

const (
	Deposit  OperationType = "deposit"
	Withdraw OperationType = "withdraw"
	Transfer OperationType = "transfer"
)

// IsValid reports whether t is a known operation type.
func (t OperationType) IsValid() bool {
	switch t {
	case Deposit, Withdraw, Transfer:
		return true
	}
	return false
}

// Statement is a single immutable monetary event on a user's ledger.
//
// Deposit and withdraw amounts are stored as positive magnitudes; the Type carries the
// direction. Transfer legs are stored signed: negative on the sender, positive on the
// recipient, where SenderID names the sender.
type Statement struct {
	StatementID string          `json:"statementID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`      // FK -> User.UserID
	Type        OperationType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	SenderID    *string         `json:"senderID,omitempty"` // Set only on transfer credit legs
	CreatedAt   time.Time       `json:"createdAt"`
}

// IsTransferCredit reports whether the statement is the receiving leg of a transfer.
func (s Statement) IsTransferCredit() bool {
	return s.Type == Transfer && s.SenderID != nil
}
