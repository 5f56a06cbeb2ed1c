// Package calculator holds the pure settlement arithmetic. Nothing here
// touches storage; callers post the computed amounts.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
)

// DefaultDiningCap is the per-person limit used when none is configured.
var DefaultDiningCap = decimal.NewFromInt(100)

var (
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrNonPositiveBill = errors.New("total amount must be positive")
	ErrNonPositiveCap  = errors.New("per-person cap must be positive")
)

// DiningSplit is the outcome of settling one group meal.
type DiningSplit struct {
	// RawShare is total / participants before rounding or capping.
	RawShare decimal.Decimal

	// PerPerson is deducted from every participant.
	PerPerson decimal.Decimal

	// Collected is PerPerson * participants.
	Collected decimal.Decimal

	// Subsidy is what the team fund covers. Never negative.
	Subsidy decimal.Decimal
}

// HasSubsidy reports whether the team fund must post an expense.
func (s DiningSplit) HasSubsidy() bool {
	return !models.IsNegligible(s.Subsidy)
}

// SettleDining computes the capped per-person deduction for a bill.
//
// Algorithm:
//   - raw = total / participants
//   - perPerson = min(cap, floor(raw, 2 decimals))
//   - subsidy = total - perPerson * participants
//
// Flooring before multiplying back out leaves the rounding residue in the
// subsidy, so collected never exceeds the bill.
func SettleDining(total decimal.Decimal, participants int, limit decimal.Decimal) (DiningSplit, error) {
	if participants <= 0 {
		return DiningSplit{}, ErrNoParticipants
	}
	if !total.IsPositive() {
		return DiningSplit{}, ErrNonPositiveBill
	}
	if !limit.IsPositive() {
		return DiningSplit{}, ErrNonPositiveCap
	}

	count := decimal.NewFromInt(int64(participants))
	raw := total.Div(count)
	perPerson := decimal.Min(limit, raw.RoundFloor(2))
	collected := perPerson.Mul(count)

	return DiningSplit{
		RawShare:  raw,
		PerPerson: perPerson,
		Collected: collected,
		Subsidy:   total.Sub(collected),
	}, nil
}
