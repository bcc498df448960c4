package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount turns a caller supplied amount into a strictly positive
// decimal. Empty, malformed, zero and negative values are rejected with
// INVALID_AMOUNT.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, NewValidationError(ErrCodeInvalidAmount, "amount is required")
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &DomainError{
			Kind:    KindValidation,
			Code:    ErrCodeInvalidAmount,
			Message: "amount is not a number",
			Err:     err,
		}
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, NewValidationError(ErrCodeInvalidAmount, "amount must be greater than zero")
	}

	return amount, nil
}
