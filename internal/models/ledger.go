package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a fund movement.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether t is INCOME or EXPENSE.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Signed returns amount with the sign implied by t.
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == Expense {
		return amount.Neg()
	}
	return amount
}

// OriginKind identifies which record generated a derived ledger row.
type OriginKind string

const (
	OriginNone   OriginKind = ""
	OriginDining OriginKind = "dining"
	OriginMatch  OriginKind = "match"
)

// Origin is the back-reference from a derived row to the record that owns it.
// The zero value means the row was entered manually.
type Origin struct {
	Kind OriginKind
	ID   string
}

// DiningOrigin returns the origin for rows generated by a dining settlement.
func DiningOrigin(diningRecordID string) Origin {
	return Origin{Kind: OriginDining, ID: diningRecordID}
}

// MatchOrigin returns the origin for rows generated by match reconciliation.
func MatchOrigin(matchID string) Origin {
	return Origin{Kind: OriginMatch, ID: matchID}
}

// IsDerived reports whether the row is owned by another record.
func (o Origin) IsDerived() bool {
	return o.Kind != OriginNone
}

// TeamFundTransaction is a row in the sponsorship fund ledger.
// Amount is a positive magnitude; Type carries the direction.
type TeamFundTransaction struct {
	ID          string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
	HandlerName string
	Date        civil.Date
	Origin      Origin
	CreatedAt   int64
}

// PersonalTransaction is a row in one player's personal account.
// Amount is signed: positive is a deposit, negative is a deduction.
type PersonalTransaction struct {
	ID          string
	PlayerID    string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        civil.Date

	// DiningRecordID is set when the row was generated by a dining settlement.
	DiningRecordID string

	CreatedAt int64
}

// MemberFundTransaction is a row in the member-dues pool.
type MemberFundTransaction struct {
	ID          string
	TotalAmount decimal.Decimal

	// PerPersonAmount is set for dues collections only.
	PerPersonAmount decimal.NullDecimal

	Type        TransactionType
	Description string
	Date        civil.Date

	// MatchID is set when the row was generated by match reconciliation.
	MatchID string

	// PayerIDs lists the players who paid, for dues collections.
	PayerIDs []string

	CreatedAt int64
}
