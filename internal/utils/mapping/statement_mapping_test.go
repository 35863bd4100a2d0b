package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatementMapping_SenderID(t *testing.T) {
	sender := "sender-1"
	credit := domain.Statement{
		StatementID: "stmt-1",
		UserID:      "recipient-1",
		SenderID:    &sender,
		Type:        domain.Transfer,
		Amount:      decimal.NewFromInt(500),
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	m := ToModelStatement(credit)
	assert.True(t, m.SenderID.Valid)
	assert.Equal(t, sender, m.SenderID.String)
	assert.Equal(t, "transfer", m.Type)

	back := ToDomainStatement(m)
	if assert.NotNil(t, back.SenderID) {
		assert.Equal(t, sender, *back.SenderID)
	}
	assert.True(t, back.IsTransferCredit())

	deposit := ToModelStatement(domain.Statement{Type: domain.Deposit, Amount: decimal.NewFromInt(1)})
	assert.False(t, deposit.SenderID.Valid)
	assert.Nil(t, ToDomainStatement(deposit).SenderID)
}
