package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
)

// MatchPosting is the member-fund entry a friendly's fees produce.
type MatchPosting struct {
	// Diff is fees - cost. Positive means players overpaid.
	Diff decimal.Decimal

	// Type is INCOME for a surplus and EXPENSE for a shortfall.
	Type models.TransactionType

	// Amount is |Diff|.
	Amount decimal.Decimal
}

// ReconcileMatch compares what attendees paid against a friendly's cost.
// ok is false when the difference is negligible and nothing is posted.
func ReconcileMatch(fees, cost decimal.Decimal) (posting MatchPosting, ok bool) {
	diff := fees.Sub(cost)
	if models.IsNegligible(diff) {
		return MatchPosting{Diff: diff}, false
	}

	posting = MatchPosting{Diff: diff, Type: models.Income, Amount: diff.Abs()}
	if diff.IsNegative() {
		posting.Type = models.Expense
	}
	return posting, true
}

// Bailout returns the transfer needed to lift a negative member-fund balance
// back to exactly zero. ok is false when the pool is solvent.
func Bailout(memberFundBalance decimal.Decimal) (amount decimal.Decimal, ok bool) {
	if !memberFundBalance.IsNegative() || models.IsNegligible(memberFundBalance) {
		return decimal.Zero, false
	}
	return memberFundBalance.Abs(), true
}
