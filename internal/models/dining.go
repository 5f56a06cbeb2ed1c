package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// DiningRecord is one settled group meal.
//
// TotalAmount, ParticipantCount, PerPersonAmount, SubsidyAmount and Cap are
// fixed at creation: the personal and team-fund rows posted from them would
// drift otherwise. Only Date, HandlerName and RestaurantName may change.
type DiningRecord struct {
	ID               string
	Date             civil.Date
	TotalAmount      decimal.Decimal
	ParticipantCount int

	// PerPersonAmount is the capped deduction applied to each participant.
	PerPersonAmount decimal.Decimal

	// SubsidyAmount is the remainder covered by the team fund.
	SubsidyAmount decimal.Decimal

	// Cap is the per-person limit in force when the bill was settled.
	Cap decimal.Decimal

	HandlerName    string
	RestaurantName string
	CreatedAt      int64
}
