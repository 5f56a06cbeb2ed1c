package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// MatchType classifies a match. Only friendlies are reconciled.
type MatchType string

const (
	MatchLeague         MatchType = "LEAGUE"
	MatchFriendly       MatchType = "FRIENDLY"
	MatchInternalWarmup MatchType = "INTERNAL_WARMUP"
)

// Valid reports whether t is a known match type.
func (t MatchType) Valid() bool {
	switch t {
	case MatchLeague, MatchFriendly, MatchInternalWarmup:
		return true
	}
	return false
}

// Match is a played fixture with its attendance list.
type Match struct {
	ID         string
	Date       civil.Date
	Opponent   string
	Type       MatchType
	LeagueName string

	// OurScore and TheirScore are nil until the result is known.
	OurScore   *int
	TheirScore *int

	// Result is WIN, DRAW or LOSS, or empty.
	Result string

	// Cost is the total expense of a friendly (pitch, water, referee).
	Cost decimal.Decimal

	Attendances []Attendance
	CreatedAt   int64
}

// Attendance is one player's appearance in a match.
type Attendance struct {
	PlayerID string
	Goals    int
	Assists  int

	// Fee is what the player paid towards a friendly's cost.
	Fee decimal.Decimal
}

// TotalFees sums the fees paid by every attendee.
func (m *Match) TotalFees() decimal.Decimal {
	total := decimal.Zero
	for _, a := range m.Attendances {
		total = total.Add(a.Fee)
	}
	return total
}
