package accounting

import (
	"fmt"

	"github.com/SscSPs/fin_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect a statement has on its owner's balance.
// This is used by the balance service and by tests to keep one sign convention.
func CalculateSignedAmount(stmt domain.Statement) (decimal.Decimal, error) {
	// DEPOSIT  -> +|amount|
	// WITHDRAW -> -|amount| regardless of the stored sign
	// TRANSFER -> stored sign (debit legs negative, credit legs positive)
	switch stmt.Type {
	case domain.Deposit:
		return stmt.Amount.Abs(), nil
	case domain.Withdraw:
		return stmt.Amount.Abs().Neg(), nil
	case domain.Transfer:
		return stmt.Amount, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown operation type '%s' encountered for statement ID %s", stmt.Type, stmt.StatementID)
	}
}

// SumStatements reduces a statement history to a balance.
func SumStatements(statements []domain.Statement) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, stmt := range statements {
		signedAmount, err := CalculateSignedAmount(stmt)
		if err != nil {
			return decimal.Zero, fmt.Errorf("error calculating signed amount for statement %s: %w", stmt.StatementID, err)
		}
		sum = sum.Add(signedAmount)
	}
	return sum, nil
}

// Amounts are stored as NUMERIC(20, 8).
const MaxAmountScale = 8

// MaxAmount is the exclusive upper bound on a single amount.
var MaxAmount = decimal.New(1, 12)

// ValidateAmount checks that a caller-supplied amount is strictly positive and fits the
// statement column, so every store accepts exactly the same amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return fmt.Errorf("amount must have at most %d decimal places, got %s", MaxAmountScale, amount.String())
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("amount must be less than %s, got %s", MaxAmount.String(), amount.String())
	}
	return nil
}
