package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
)

const playerColumns = `id, name, jersey_number, personal_balance_cents, is_member, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	p := &models.Player{}
	var jersey sql.NullString
	var balance int64
	if err := row.Scan(&p.ID, &p.Name, &jersey, &balance, &p.IsMember, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.JerseyNumber = jersey.String
	p.PersonalBalance = fromCents(balance)
	return p, nil
}

// CreatePlayer inserts a new player with a zero balance.
func (q *queries) CreatePlayer(ctx context.Context, p *models.Player) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	p.PersonalBalance = decimal.Zero

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO players (id, name, jersey_number, personal_balance_cents, is_member, created_at)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		p.ID, p.Name, nullString(p.JerseyNumber), p.IsMember, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player by ID.
func (q *queries) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	p, err := scanPlayer(q.db.QueryRowContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id = ?", id))
	if err != nil {
		return nil, notFound(err, "player", id)
	}
	return p, nil
}

// ListPlayers returns every player ordered by name.
func (q *queries) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+playerColumns+" FROM players ORDER BY name, created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// AdjustPlayerBalance adds delta to a player's stored balance.
func (q *queries) AdjustPlayerBalance(ctx context.Context, playerID string, delta decimal.Decimal) error {
	cents, err := toCents(delta)
	if err != nil {
		return err
	}
	res, err := q.db.ExecContext(ctx,
		"UPDATE players SET personal_balance_cents = personal_balance_cents + ? WHERE id = ?",
		cents, playerID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}
	return requireAffected(res, "player", playerID)
}

// SetMembership sets is_member on the given players.
func (q *queries) SetMembership(ctx context.Context, playerIDs []string, isMember bool) (int64, error) {
	if len(playerIDs) == 0 {
		return 0, nil
	}
	args := append([]any{isMember}, stringArgs(playerIDs)...)
	res, err := q.db.ExecContext(ctx,
		"UPDATE players SET is_member = ? WHERE id IN ("+placeholders(len(playerIDs))+")",
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to set membership: %w", err)
	}
	return res.RowsAffected()
}

// ClearAllMemberships revokes membership from every current member.
func (q *queries) ClearAllMemberships(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, "UPDATE players SET is_member = 0 WHERE is_member = 1")
	if err != nil {
		return 0, fmt.Errorf("failed to clear memberships: %w", err)
	}
	return res.RowsAffected()
}

// UpdatePlayer writes Name and JerseyNumber only.
func (q *queries) UpdatePlayer(ctx context.Context, p *models.Player) error {
	res, err := q.db.ExecContext(ctx,
		"UPDATE players SET name = ?, jersey_number = ? WHERE id = ?",
		p.Name, nullString(p.JerseyNumber), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return requireAffected(res, "player", p.ID)
}

// DeletePlayer removes a player row. Rows that still reference the player
// make the delete fail on the foreign key.
func (q *queries) DeletePlayer(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return requireAffected(res, "player", id)
}

// PlayerReferences counts the personal rows, attendances and dues payer
// links that point at a player.
func (q *queries) PlayerReferences(ctx context.Context, id string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM personal_transactions WHERE player_id = ?)
		      + (SELECT COUNT(*) FROM attendances WHERE player_id = ?)
		      + (SELECT COUNT(*) FROM member_fund_payers WHERE player_id = ?)`,
		id, id, id,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count player references: %w", err)
	}
	return n, nil
}
