// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up or mutated row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmountOutOfRange is returned when an amount cannot be stored exactly.
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// PersonalFilter narrows ListPersonalTransactions. Zero fields match all rows.
type PersonalFilter struct {
	PlayerID       string
	DiningRecordID string
}

// TeamFundFilter narrows ListTeamFundTransactions. Month is "YYYY-MM".
type TeamFundFilter struct {
	Month  string
	Origin *models.Origin
}

// Reader is the read side of the store. Every method is also available
// inside a transaction through Tx, where it sees uncommitted writes.
type Reader interface {
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]*models.Player, error)
	// PlayerReferences counts ledger rows, attendances and dues payer links
	// that point at the player.
	PlayerReferences(ctx context.Context, id string) (int64, error)

	GetPersonalTransaction(ctx context.Context, id string) (*models.PersonalTransaction, error)
	ListPersonalTransactions(ctx context.Context, filter PersonalFilter) ([]*models.PersonalTransaction, error)

	GetTeamFundTransaction(ctx context.Context, id string) (*models.TeamFundTransaction, error)
	ListTeamFundTransactions(ctx context.Context, filter TeamFundFilter) ([]*models.TeamFundTransaction, error)
	TeamFundCategories(ctx context.Context, t models.TransactionType) ([]string, error)
	TeamFundBalance(ctx context.Context) (decimal.Decimal, error)

	GetDiningRecord(ctx context.Context, id string) (*models.DiningRecord, error)
	ListDiningRecords(ctx context.Context) ([]*models.DiningRecord, error)

	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
	LeagueNames(ctx context.Context) ([]string, error)

	GetMemberFundTransaction(ctx context.Context, id string) (*models.MemberFundTransaction, error)
	ListMemberFundTransactions(ctx context.Context) ([]*models.MemberFundTransaction, error)
	MemberFundBalance(ctx context.Context) (decimal.Decimal, error)
}

// Tx is one all-or-nothing unit of work. Nothing written through a Tx is
// visible outside it until the function passed to Store.InTx returns nil.
type Tx interface {
	Reader

	CreatePlayer(ctx context.Context, p *models.Player) error
	// UpdatePlayer writes Name and JerseyNumber only.
	UpdatePlayer(ctx context.Context, p *models.Player) error
	DeletePlayer(ctx context.Context, id string) error
	// AdjustPlayerBalance adds delta to the stored balance.
	// Returns ErrNotFound if the player does not exist.
	AdjustPlayerBalance(ctx context.Context, playerID string, delta decimal.Decimal) error
	// SetMembership returns the number of players updated.
	SetMembership(ctx context.Context, playerIDs []string, isMember bool) (int64, error)
	// ClearAllMemberships revokes membership from every current member and
	// returns how many players lost it.
	ClearAllMemberships(ctx context.Context) (int64, error)

	InsertPersonalTransaction(ctx context.Context, t *models.PersonalTransaction) error
	UpdatePersonalTransaction(ctx context.Context, t *models.PersonalTransaction) error
	DeletePersonalTransaction(ctx context.Context, id string) error

	InsertTeamFundTransaction(ctx context.Context, t *models.TeamFundTransaction) error
	UpdateTeamFundTransaction(ctx context.Context, t *models.TeamFundTransaction) error
	DeleteTeamFundTransaction(ctx context.Context, id string) error
	// DeleteTeamFundTransactionsByOrigin returns the number of rows removed.
	DeleteTeamFundTransactionsByOrigin(ctx context.Context, origin models.Origin) (int64, error)

	InsertDiningRecord(ctx context.Context, r *models.DiningRecord) error
	// UpdateDiningMetadata writes Date, HandlerName and RestaurantName only.
	UpdateDiningMetadata(ctx context.Context, r *models.DiningRecord) error
	DeleteDiningRecord(ctx context.Context, id string) error

	// SaveMatch inserts or updates the match and replaces its attendance list.
	SaveMatch(ctx context.Context, m *models.Match) error
	DeleteMatch(ctx context.Context, id string) error

	InsertMemberFundTransaction(ctx context.Context, t *models.MemberFundTransaction) error
	DeleteMemberFundTransaction(ctx context.Context, id string) error
	// DeleteMemberFundTransactionsByMatch returns the number of rows removed.
	DeleteMemberFundTransactionsByMatch(ctx context.Context, matchID string) (int64, error)
}

// Store defines the storage operations for the club ledgers.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the settlement engine.
type Store interface {
	Reader

	// InTx runs fn in a single transaction. If fn returns an error or panics,
	// every write it made is rolled back.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}
