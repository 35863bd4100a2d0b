package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Statement is the row stored in the statements table.
type Statement struct {
	StatementID string          `db:"statement_id"`
	UserID      string          `db:"user_id"`
	SenderID    sql.NullString  `db:"sender_id"` // Nullable, set on transfer credit legs
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
