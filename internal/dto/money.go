package dto

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrAmountPrecision = errors.New("amount must have at most two decimal places")

// Money formats an amount the way every response carries it: a string with
// exactly two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CheckPrecision rejects amounts that cannot be stored in NUMERIC(12,2)
// without rounding.
func CheckPrecision(d decimal.Decimal) error {
	if !d.Equal(d.Round(2)) {
		return ErrAmountPrecision
	}
	return nil
}
