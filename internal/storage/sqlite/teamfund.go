package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

const teamFundColumns = `id, amount_cents, type, category, description, handler_name, date, dining_record_id, source_match_id, created_at`

func scanTeamFund(row rowScanner) (*models.TeamFundTransaction, error) {
	t := &models.TeamFundTransaction{}
	var amount int64
	var description, handler, dining, match sql.NullString
	var date string
	if err := row.Scan(&t.ID, &amount, &t.Type, &t.Category, &description, &handler,
		&date, &dining, &match, &t.CreatedAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	t.Amount = fromCents(amount)
	t.Description = description.String
	t.HandlerName = handler.String
	t.Date = d
	switch {
	case dining.Valid:
		t.Origin = models.DiningOrigin(dining.String)
	case match.Valid:
		t.Origin = models.MatchOrigin(match.String)
	}
	return t, nil
}

// originColumns splits an Origin into its two nullable foreign keys.
func originColumns(o models.Origin) (dining, match any) {
	switch o.Kind {
	case models.OriginDining:
		return o.ID, nil
	case models.OriginMatch:
		return nil, o.ID
	}
	return nil, nil
}

func originClause(o models.Origin) (string, any, error) {
	switch o.Kind {
	case models.OriginDining:
		return "dining_record_id = ?", o.ID, nil
	case models.OriginMatch:
		return "source_match_id = ?", o.ID, nil
	}
	return "", nil, fmt.Errorf("origin kind %q has no back-reference", o.Kind)
}

// InsertTeamFundTransaction persists a sponsorship fund row.
func (q *queries) InsertTeamFundTransaction(ctx context.Context, t *models.TeamFundTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}
	dining, match := originColumns(t.Origin)
	amount, err := toCents(t.Amount)
	if err != nil {
		return err
	}

	_, err = q.db.ExecContext(ctx,
		`INSERT INTO team_fund_transactions (`+teamFundColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, amount, string(t.Type), t.Category, nullString(t.Description),
		nullString(t.HandlerName), t.Date.String(), dining, match, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team fund transaction: %w", err)
	}
	return nil
}

// UpdateTeamFundTransaction rewrites every manual field. Origin is never changed.
func (q *queries) UpdateTeamFundTransaction(ctx context.Context, t *models.TeamFundTransaction) error {
	amount, err := toCents(t.Amount)
	if err != nil {
		return err
	}
	res, err := q.db.ExecContext(ctx,
		`UPDATE team_fund_transactions
		 SET amount_cents = ?, type = ?, category = ?, description = ?, handler_name = ?, date = ?
		 WHERE id = ?`,
		amount, string(t.Type), t.Category, nullString(t.Description),
		nullString(t.HandlerName), t.Date.String(), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team fund transaction: %w", err)
	}
	return requireAffected(res, "team fund transaction", t.ID)
}

// DeleteTeamFundTransaction removes one sponsorship fund row.
func (q *queries) DeleteTeamFundTransaction(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM team_fund_transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete team fund transaction: %w", err)
	}
	return requireAffected(res, "team fund transaction", id)
}

// DeleteTeamFundTransactionsByOrigin removes every row owned by the origin.
func (q *queries) DeleteTeamFundTransactionsByOrigin(ctx context.Context, origin models.Origin) (int64, error) {
	clause, arg, err := originClause(origin)
	if err != nil {
		return 0, err
	}
	res, err := q.db.ExecContext(ctx, "DELETE FROM team_fund_transactions WHERE "+clause, arg)
	if err != nil {
		return 0, fmt.Errorf("failed to delete team fund transactions: %w", err)
	}
	return res.RowsAffected()
}

// GetTeamFundTransaction retrieves a sponsorship fund row by ID.
func (q *queries) GetTeamFundTransaction(ctx context.Context, id string) (*models.TeamFundTransaction, error) {
	t, err := scanTeamFund(q.db.QueryRowContext(ctx,
		"SELECT "+teamFundColumns+" FROM team_fund_transactions WHERE id = ?", id))
	if err != nil {
		return nil, notFound(err, "team fund transaction", id)
	}
	return t, nil
}

// ListTeamFundTransactions returns matching rows, newest first.
func (q *queries) ListTeamFundTransactions(ctx context.Context, filter storage.TeamFundFilter) ([]*models.TeamFundTransaction, error) {
	var where []string
	var args []any
	if filter.Month != "" {
		where = append(where, "substr(date, 1, 7) = ?")
		args = append(args, filter.Month)
	}
	if filter.Origin != nil {
		clause, arg, err := originClause(*filter.Origin)
		if err != nil {
			return nil, err
		}
		where = append(where, clause)
		args = append(args, arg)
	}

	query := "SELECT " + teamFundColumns + " FROM team_fund_transactions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC, rowid DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team fund transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.TeamFundTransaction
	for rows.Next() {
		t, err := scanTeamFund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team fund transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team fund transactions: %w", err)
	}
	return txs, nil
}

// TeamFundCategories returns the distinct categories used for a type.
func (q *queries) TeamFundCategories(ctx context.Context, t models.TransactionType) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM team_fund_transactions WHERE type = ? ORDER BY category",
		string(t),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// TeamFundBalance is SUM(INCOME) - SUM(EXPENSE).
func (q *queries) TeamFundBalance(ctx context.Context) (decimal.Decimal, error) {
	return q.fundBalance(ctx, "team_fund_transactions", "amount_cents")
}

func (q *queries) fundBalance(ctx context.Context, table, column string) (decimal.Decimal, error) {
	var cents int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN type = 'INCOME' THEN `+column+` ELSE -`+column+` END), 0) FROM `+table,
	).Scan(&cents)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s: %w", table, err)
	}
	return fromCents(cents), nil
}
