package domain

import "github.com/shopspring/decimal"

// Balance is the derived running sum of a user's statements at query time.
// It is never persisted.
type Balance struct {
	UserID     string          `json:"userID"`
	Balance    decimal.Decimal `json:"balance"`
	Statements []Statement     `json:"statements"`
}
