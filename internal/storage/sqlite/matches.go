package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alumnifc/clubledger/internal/models"
)

const matchColumns = `id, date, opponent, type, league_name, our_score, their_score, result, cost_cents, created_at`

func scanMatch(row rowScanner) (*models.Match, error) {
	m := &models.Match{}
	var date string
	var league, result sql.NullString
	var ours, theirs sql.NullInt64
	var cost int64
	if err := row.Scan(&m.ID, &date, &m.Opponent, &m.Type, &league, &ours, &theirs,
		&result, &cost, &m.CreatedAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	m.Date = d
	m.LeagueName = league.String
	m.Result = result.String
	m.Cost = fromCents(cost)
	if ours.Valid {
		v := int(ours.Int64)
		m.OurScore = &v
	}
	if theirs.Valid {
		v := int(theirs.Int64)
		m.TheirScore = &v
	}
	return m, nil
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// SaveMatch inserts a new match (empty ID) or updates an existing one, then
// replaces its attendance list.
func (q *queries) SaveMatch(ctx context.Context, m *models.Match) error {
	cost, err := toCents(m.Cost)
	if err != nil {
		return err
	}
	fees := make([]int64, len(m.Attendances))
	for i, a := range m.Attendances {
		if fees[i], err = toCents(a.Fee); err != nil {
			return err
		}
	}

	if m.ID == "" {
		m.ID = uuid.New().String()
		if m.CreatedAt == 0 {
			m.CreatedAt = time.Now().Unix()
		}
		_, err := q.db.ExecContext(ctx,
			`INSERT INTO matches (`+matchColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Date.String(), m.Opponent, string(m.Type), nullString(m.LeagueName),
			nullInt(m.OurScore), nullInt(m.TheirScore), nullString(m.Result), cost, m.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match: %w", err)
		}
	} else {
		res, err := q.db.ExecContext(ctx,
			`UPDATE matches
			 SET date = ?, opponent = ?, type = ?, league_name = ?, our_score = ?, their_score = ?, result = ?, cost_cents = ?
			 WHERE id = ?`,
			m.Date.String(), m.Opponent, string(m.Type), nullString(m.LeagueName),
			nullInt(m.OurScore), nullInt(m.TheirScore), nullString(m.Result), cost, m.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update match: %w", err)
		}
		if err := requireAffected(res, "match", m.ID); err != nil {
			return err
		}
	}

	if _, err := q.db.ExecContext(ctx, "DELETE FROM attendances WHERE match_id = ?", m.ID); err != nil {
		return fmt.Errorf("failed to clear attendances: %w", err)
	}
	for i, a := range m.Attendances {
		_, err := q.db.ExecContext(ctx,
			`INSERT INTO attendances (match_id, player_id, goals, assists, fee_cents) VALUES (?, ?, ?, ?, ?)`,
			m.ID, a.PlayerID, a.Goals, a.Assists, fees[i],
		)
		if err != nil {
			return fmt.Errorf("failed to insert attendance: %w", err)
		}
	}
	return nil
}

// DeleteMatch removes a match and, by cascade, its attendance rows.
func (q *queries) DeleteMatch(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM matches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return requireAffected(res, "match", id)
}

// GetMatch retrieves a match with its attendance list.
func (q *queries) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	m, err := scanMatch(q.db.QueryRowContext(ctx,
		"SELECT "+matchColumns+" FROM matches WHERE id = ?", id))
	if err != nil {
		return nil, notFound(err, "match", id)
	}
	attendances, err := q.attendances(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Attendances = attendances
	return m, nil
}

// ListMatches returns every match with attendances, newest first.
func (q *queries) ListMatches(ctx context.Context) ([]*models.Match, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+matchColumns+" FROM matches ORDER BY date DESC, created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	var matches []*models.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	// Attendances load after the match cursor is closed; the pool has one connection.
	for _, m := range matches {
		if m.Attendances, err = q.attendances(ctx, m.ID); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// LeagueNames returns the distinct non-empty league names in use.
func (q *queries) LeagueNames(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT DISTINCT league_name FROM matches WHERE league_name IS NOT NULL AND league_name != '' ORDER BY league_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list league names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan league name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (q *queries) attendances(ctx context.Context, matchID string) ([]models.Attendance, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT player_id, goals, assists, fee_cents FROM attendances WHERE match_id = ? ORDER BY rowid",
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances: %w", err)
	}
	defer rows.Close()

	var list []models.Attendance
	for rows.Next() {
		var a models.Attendance
		var fee int64
		if err := rows.Scan(&a.PlayerID, &a.Goals, &a.Assists, &fee); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.Fee = fromCents(fee)
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return list, nil
}
