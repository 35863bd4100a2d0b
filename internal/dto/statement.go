package dto

import (
	"time"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStatementRequest records a deposit or withdrawal.
// Type is filled in by the handler from the route.
type CreateStatementRequest struct {
	Type        domain.OperationType `json:"-"`
	Amount      decimal.Decimal      `json:"amount" binding:"decimal_gt0"`
	Description string               `json:"description" binding:"max=255"`
}

// TransferRequest moves funds to another user. ToUserID is filled in from the route.
type TransferRequest struct {
	ToUserID    string          `json:"-"`
	Amount      decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	Description string          `json:"description" binding:"max=255"`
}

// StatementResponse defines the data returned for a statement.
type StatementResponse struct {
	StatementID string          `json:"id"`
	UserID      string          `json:"user_id"`
	SenderID    *string         `json:"sender_id,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BalanceResponse lists a user's statements alongside the derived balance.
type BalanceResponse struct {
	Statements []StatementResponse `json:"statement"`
	Balance    decimal.Decimal     `json:"balance"`
}

// ToStatementResponse converts a domain.Statement to StatementResponse DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		StatementID: s.StatementID,
		UserID:      s.UserID,
		SenderID:    s.SenderID,
		Type:        string(s.Type),
		Amount:      s.Amount,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// ToBalanceResponse converts a domain.Balance to BalanceResponse DTO.
func ToBalanceResponse(b *domain.Balance) BalanceResponse {
	responses := make([]StatementResponse, len(b.Statements))
	for i := range b.Statements {
		responses[i] = ToStatementResponse(&b.Statements[i])
	}
	return BalanceResponse{
		Statements: responses,
		Balance:    b.Balance,
	}
}
