package models

import "github.com/shopspring/decimal"

// Cent is the smallest currency unit the ledgers record.
var Cent = decimal.New(1, -2)

// MaxAmount is the largest magnitude any single ledger amount may have.
var MaxAmount = decimal.New(1, 12)

// Epsilon is the tolerance below which an amount is treated as zero.
// Amounts are exact decimals, so half a cent separates "nothing" from
// the smallest real amount.
var Epsilon = decimal.New(5, -3)

// IsNegligible reports whether |d| is below Epsilon.
func IsNegligible(d decimal.Decimal) bool {
	return d.Abs().LessThan(Epsilon)
}

// HasCentPrecision reports whether d has no digits beyond the cent.
func HasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
