package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
)

// TeamFundBalance is the sum of INCOME minus the sum of EXPENSE.
func TeamFundBalance(rows []*models.TeamFundTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Type.Signed(r.Amount))
	}
	return total
}

// MemberFundBalance is the sum of INCOME minus the sum of EXPENSE.
func MemberFundBalance(rows []*models.MemberFundTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Type.Signed(r.TotalAmount))
	}
	return total
}

// PersonalBalance sums a player's signed personal transaction amounts.
func PersonalBalance(rows []*models.PersonalTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}

// BalanceDrift describes a player whose stored balance disagrees with their
// transaction history.
type BalanceDrift struct {
	PlayerID string
	Stored   decimal.Decimal
	Computed decimal.Decimal
}

// FindDrift compares each player's stored balance with the sum of their rows.
// byPlayer maps player ID to that player's transactions.
func FindDrift(players []*models.Player, byPlayer map[string][]*models.PersonalTransaction) []BalanceDrift {
	var drift []BalanceDrift
	for _, p := range players {
		computed := PersonalBalance(byPlayer[p.ID])
		if !computed.Equal(p.PersonalBalance) {
			drift = append(drift, BalanceDrift{
				PlayerID: p.ID,
				Stored:   p.PersonalBalance,
				Computed: computed,
			})
		}
	}
	return drift
}
