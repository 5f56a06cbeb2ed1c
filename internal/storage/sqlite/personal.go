package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

const personalColumns = `id, player_id, amount_cents, category, description, date, dining_record_id, created_at`

func scanPersonal(row rowScanner) (*models.PersonalTransaction, error) {
	t := &models.PersonalTransaction{}
	var amount int64
	var description, dining sql.NullString
	var date string
	if err := row.Scan(&t.ID, &t.PlayerID, &amount, &t.Category, &description, &date, &dining, &t.CreatedAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	t.Amount = fromCents(amount)
	t.Description = description.String
	t.Date = d
	t.DiningRecordID = dining.String
	return t, nil
}

// InsertPersonalTransaction persists a personal ledger row.
// The caller is responsible for the matching balance adjustment.
func (q *queries) InsertPersonalTransaction(ctx context.Context, t *models.PersonalTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}

	amount, err := toCents(t.Amount)
	if err != nil {
		return err
	}

	_, err = q.db.ExecContext(ctx,
		`INSERT INTO personal_transactions (`+personalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.PlayerID, amount, t.Category, nullString(t.Description),
		t.Date.String(), nullString(t.DiningRecordID), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert personal transaction: %w", err)
	}
	return nil
}

// UpdatePersonalTransaction rewrites amount, category, description and date.
func (q *queries) UpdatePersonalTransaction(ctx context.Context, t *models.PersonalTransaction) error {
	amount, err := toCents(t.Amount)
	if err != nil {
		return err
	}
	res, err := q.db.ExecContext(ctx,
		`UPDATE personal_transactions SET amount_cents = ?, category = ?, description = ?, date = ? WHERE id = ?`,
		amount, t.Category, nullString(t.Description), t.Date.String(), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update personal transaction: %w", err)
	}
	return requireAffected(res, "personal transaction", t.ID)
}

// DeletePersonalTransaction removes a personal ledger row.
func (q *queries) DeletePersonalTransaction(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM personal_transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete personal transaction: %w", err)
	}
	return requireAffected(res, "personal transaction", id)
}

// GetPersonalTransaction retrieves a personal ledger row by ID.
func (q *queries) GetPersonalTransaction(ctx context.Context, id string) (*models.PersonalTransaction, error) {
	t, err := scanPersonal(q.db.QueryRowContext(ctx,
		"SELECT "+personalColumns+" FROM personal_transactions WHERE id = ?", id))
	if err != nil {
		return nil, notFound(err, "personal transaction", id)
	}
	return t, nil
}

// ListPersonalTransactions returns matching rows, newest first.
func (q *queries) ListPersonalTransactions(ctx context.Context, filter storage.PersonalFilter) ([]*models.PersonalTransaction, error) {
	var where []string
	var args []any
	if filter.PlayerID != "" {
		where = append(where, "player_id = ?")
		args = append(args, filter.PlayerID)
	}
	if filter.DiningRecordID != "" {
		where = append(where, "dining_record_id = ?")
		args = append(args, filter.DiningRecordID)
	}

	query := "SELECT " + personalColumns + " FROM personal_transactions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC, rowid DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.PersonalTransaction
	for rows.Next() {
		t, err := scanPersonal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personal transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate personal transactions: %w", err)
	}
	return txs, nil
}
