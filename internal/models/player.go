package models

import "github.com/shopspring/decimal"

// Player is a club member on the roster.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string

	// Name is the display name of the player.
	Name string

	// JerseyNumber is optional and free-form ("7", "10A").
	JerseyNumber string

	// PersonalBalance is the player's prepaid account balance.
	// Invariant: equals the sum of the player's PersonalTransaction amounts.
	PersonalBalance decimal.Decimal

	// IsMember is granted by paying dues and revoked by member-fund insolvency
	// or manually by the team manager.
	IsMember bool

	// CreatedAt is the Unix timestamp when the player was added.
	CreatedAt int64
}
