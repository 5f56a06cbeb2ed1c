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

const memberFundColumns = `id, total_cents, per_person_cents, type, description, date, match_id, created_at`

func scanMemberFund(row rowScanner) (*models.MemberFundTransaction, error) {
	t := &models.MemberFundTransaction{}
	var total int64
	var perPerson sql.NullInt64
	var description, match sql.NullString
	var date string
	if err := row.Scan(&t.ID, &total, &perPerson, &t.Type, &description, &date, &match, &t.CreatedAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	t.TotalAmount = fromCents(total)
	if perPerson.Valid {
		t.PerPersonAmount = decimal.NewNullDecimal(fromCents(perPerson.Int64))
	}
	t.Description = description.String
	t.Date = d
	t.MatchID = match.String
	return t, nil
}

// InsertMemberFundTransaction persists a member-dues pool row and its payers.
func (q *queries) InsertMemberFundTransaction(ctx context.Context, t *models.MemberFundTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}
	total, err := toCents(t.TotalAmount)
	if err != nil {
		return err
	}
	var perPerson any
	if t.PerPersonAmount.Valid {
		c, err := toCents(t.PerPersonAmount.Decimal)
		if err != nil {
			return err
		}
		perPerson = c
	}

	_, err = q.db.ExecContext(ctx,
		`INSERT INTO member_fund_transactions (`+memberFundColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, total, perPerson, string(t.Type), nullString(t.Description),
		t.Date.String(), nullString(t.MatchID), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member fund transaction: %w", err)
	}

	for _, playerID := range t.PayerIDs {
		_, err := q.db.ExecContext(ctx,
			"INSERT INTO member_fund_payers (transaction_id, player_id) VALUES (?, ?)",
			t.ID, playerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payer: %w", err)
		}
	}
	return nil
}

// DeleteMemberFundTransaction removes one pool row; payers cascade.
func (q *queries) DeleteMemberFundTransaction(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM member_fund_transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete member fund transaction: %w", err)
	}
	return requireAffected(res, "member fund transaction", id)
}

// DeleteMemberFundTransactionsByMatch removes every pool row tagged with the match.
func (q *queries) DeleteMemberFundTransactionsByMatch(ctx context.Context, matchID string) (int64, error) {
	res, err := q.db.ExecContext(ctx, "DELETE FROM member_fund_transactions WHERE match_id = ?", matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete member fund transactions: %w", err)
	}
	return res.RowsAffected()
}

// GetMemberFundTransaction retrieves a pool row with its payers.
func (q *queries) GetMemberFundTransaction(ctx context.Context, id string) (*models.MemberFundTransaction, error) {
	t, err := scanMemberFund(q.db.QueryRowContext(ctx,
		"SELECT "+memberFundColumns+" FROM member_fund_transactions WHERE id = ?", id))
	if err != nil {
		return nil, notFound(err, "member fund transaction", id)
	}
	payers, err := q.payers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.PayerIDs = payers[t.ID]
	return t, nil
}

// ListMemberFundTransactions returns every pool row with payers, newest first.
func (q *queries) ListMemberFundTransactions(ctx context.Context) ([]*models.MemberFundTransaction, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+memberFundColumns+" FROM member_fund_transactions ORDER BY date DESC, created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list member fund transactions: %w", err)
	}

	var txs []*models.MemberFundTransaction
	for rows.Next() {
		t, err := scanMemberFund(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan member fund transaction: %w", err)
		}
		txs = append(txs, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member fund transactions: %w", err)
	}

	payers, err := q.payers(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, t := range txs {
		t.PayerIDs = payers[t.ID]
	}
	return txs, nil
}

// payers maps transaction ID to payer player IDs, for one transaction or,
// with an empty txID, for all of them.
func (q *queries) payers(ctx context.Context, txID string) (map[string][]string, error) {
	query := "SELECT transaction_id, player_id FROM member_fund_payers"
	var args []any
	if txID != "" {
		query += " WHERE transaction_id = ?"
		args = append(args, txID)
	}
	rows, err := q.db.QueryContext(ctx, query+" ORDER BY rowid", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get payers: %w", err)
	}
	defer rows.Close()

	payers := make(map[string][]string)
	for rows.Next() {
		var id, playerID string
		if err := rows.Scan(&id, &playerID); err != nil {
			return nil, fmt.Errorf("failed to scan payer: %w", err)
		}
		payers[id] = append(payers[id], playerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payers: %w", err)
	}
	return payers, nil
}

// MemberFundBalance is SUM(INCOME) - SUM(EXPENSE).
func (q *queries) MemberFundBalance(ctx context.Context) (decimal.Decimal, error) {
	return q.fundBalance(ctx, "member_fund_transactions", "total_cents")
}
