package mapping

import (
	"database/sql"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/SscSPs/fin_api/internal/models"
)

// ToModelStatement converts a domain Statement to a model Statement
func ToModelStatement(d domain.Statement) models.Statement {
	var senderID sql.NullString
	if d.SenderID != nil {
		senderID = sql.NullString{String: *d.SenderID, Valid: true}
	}
	return models.Statement{
		StatementID: d.StatementID,
		UserID:      d.UserID,
		SenderID:    senderID,
		Type:        string(d.Type),
		Amount:      d.Amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainStatement converts a model Statement to a domain Statement
func ToDomainStatement(m models.Statement) domain.Statement {
	var senderID *string
	if m.SenderID.Valid {
		s := m.SenderID.String
		senderID = &s
	}
	return domain.Statement{
		StatementID: m.StatementID,
		UserID:      m.UserID,
		SenderID:    senderID,
		Type:        domain.OperationType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainStatementSlice converts a slice of model Statements to a slice of domain Statements
func ToDomainStatementSlice(ms []models.Statement) []domain.Statement {
	ds := make([]domain.Statement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStatement(m)
	}
	return ds
}
