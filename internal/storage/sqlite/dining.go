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

const diningColumns = `id, date, total_cents, participant_count, per_person_cents, subsidy_cents, cap_cents, handler_name, restaurant_name, created_at`

func scanDining(row rowScanner) (*models.DiningRecord, error) {
	r := &models.DiningRecord{}
	var date string
	var total, perPerson, subsidy, limit int64
	var handler, restaurant sql.NullString
	if err := row.Scan(&r.ID, &date, &total, &r.ParticipantCount, &perPerson, &subsidy, &limit,
		&handler, &restaurant, &r.CreatedAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	r.Date = d
	r.TotalAmount = fromCents(total)
	r.PerPersonAmount = fromCents(perPerson)
	r.SubsidyAmount = fromCents(subsidy)
	r.Cap = fromCents(limit)
	r.HandlerName = handler.String
	r.RestaurantName = restaurant.String
	return r, nil
}

// InsertDiningRecord persists a settled meal.
func (q *queries) InsertDiningRecord(ctx context.Context, r *models.DiningRecord) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}

	var cents [4]int64
	for i, d := range []decimal.Decimal{r.TotalAmount, r.PerPersonAmount, r.SubsidyAmount, r.Cap} {
		c, err := toCents(d)
		if err != nil {
			return err
		}
		cents[i] = c
	}

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO dining_records (`+diningColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Date.String(), cents[0], r.ParticipantCount,
		cents[1], cents[2], cents[3],
		nullString(r.HandlerName), nullString(r.RestaurantName), r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dining record: %w", err)
	}
	return nil
}

// UpdateDiningMetadata writes the mutable fields only.
func (q *queries) UpdateDiningMetadata(ctx context.Context, r *models.DiningRecord) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE dining_records SET date = ?, handler_name = ?, restaurant_name = ? WHERE id = ?`,
		r.Date.String(), nullString(r.HandlerName), nullString(r.RestaurantName), r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dining record: %w", err)
	}
	return requireAffected(res, "dining record", r.ID)
}

// DeleteDiningRecord removes the record. Rows referencing it must be gone first.
func (q *queries) DeleteDiningRecord(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM dining_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete dining record: %w", err)
	}
	return requireAffected(res, "dining record", id)
}

// GetDiningRecord retrieves a dining record by ID.
func (q *queries) GetDiningRecord(ctx context.Context, id string) (*models.DiningRecord, error) {
	r, err := scanDining(q.db.QueryRowContext(ctx,
		"SELECT "+diningColumns+" FROM dining_records WHERE id = ?", id))
	if err != nil {
		return nil, notFound(err, "dining record", id)
	}
	return r, nil
}

// ListDiningRecords returns every dining record, newest first.
func (q *queries) ListDiningRecords(ctx context.Context) ([]*models.DiningRecord, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+diningColumns+" FROM dining_records ORDER BY date DESC, created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list dining records: %w", err)
	}
	defer rows.Close()

	var records []*models.DiningRecord
	for rows.Next() {
		r, err := scanDining(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dining record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dining records: %w", err)
	}
	return records, nil
}
