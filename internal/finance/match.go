package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/calculator"
	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

const (
	CategoryBailout    = "member-fund bailout"
	DescriptionBailout = "team fund transfer"
)

var matchResults = map[string]bool{"": true, "WIN": true, "DRAW": true, "LOSS": true}

// Reconciliation reports what saving a match did to the ledgers.
type Reconciliation struct {
	// Retracted counts the earlier rows of this match that were removed.
	Retracted int64

	// Diff is fees - cost for a friendly, zero otherwise.
	Diff decimal.Decimal

	// Posted is the surplus or shortfall row, nil when nothing was posted.
	Posted *models.MemberFundTransaction

	// Bailout is the amount moved from the team fund, zero when the pool
	// stayed solvent.
	Bailout decimal.Decimal

	// RevokedMemberships counts players who lost membership to the bailout.
	RevokedMemberships int64
}

func validateMatch(m *models.Match) error {
	if !m.Type.Valid() {
		return invalidf("match type %q", m.Type)
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return invalidf("opponent is required")
	}
	if err := validateDate(m.Date); err != nil {
		return err
	}
	if !matchResults[m.Result] {
		return invalidf("match result %q", m.Result)
	}
	if m.Cost.IsNegative() {
		return invalidf("cost must not be negative")
	}
	if err := validateCents("cost", m.Cost); err != nil {
		return err
	}

	seen := make(map[string]bool, len(m.Attendances))
	for _, a := range m.Attendances {
		if a.PlayerID == "" {
			return invalidf("attendance without player id")
		}
		if seen[a.PlayerID] {
			return invalidf("player %s attends twice", a.PlayerID)
		}
		seen[a.PlayerID] = true
		if a.Goals < 0 || a.Assists < 0 {
			return invalidf("negative goals or assists for player %s", a.PlayerID)
		}
		if a.Fee.IsNegative() {
			return invalidf("negative fee for player %s", a.PlayerID)
		}
		if err := validateCents("fee", a.Fee); err != nil {
			return err
		}
	}
	return nil
}

// SaveMatch creates or updates a match. Every save first retracts the
// ledger rows this match produced before; a friendly is then reconciled from
// scratch, so saving the same match twice leaves the ledgers as one save does.
func (e *Engine) SaveMatch(ctx context.Context, m *models.Match) (*Reconciliation, error) {
	if err := validateMatch(m); err != nil {
		return nil, err
	}

	id := m.ID
	var rec *Reconciliation
	err := e.run(ctx, "save_match", func(tx storage.Tx) error {
		ids := make([]string, len(m.Attendances))
		for i, a := range m.Attendances {
			ids[i] = a.PlayerID
		}
		if err := requirePlayers(ctx, tx, ids); err != nil {
			return err
		}
		if err := tx.SaveMatch(ctx, m); err != nil {
			return err
		}

		retracted, err := retract(ctx, tx, m.ID)
		if err != nil {
			return err
		}
		rec = &Reconciliation{Retracted: retracted, Diff: decimal.Zero, Bailout: decimal.Zero}
		if m.Type != models.MatchFriendly {
			return nil
		}
		return e.reconcile(ctx, tx, m, rec)
	})
	if err != nil {
		// A rolled-back insert must not leave its generated id behind.
		m.ID = id
		return nil, err
	}

	if rec.Bailout.IsPositive() {
		e.metrics.Bailout(rec.Bailout, rec.RevokedMemberships)
	}
	e.log.Info("match saved",
		"match_id", m.ID,
		"type", m.Type,
		"retracted", rec.Retracted,
		"diff", rec.Diff,
		"bailout", rec.Bailout,
	)
	return rec, nil
}

// reconcile posts the friendly's surplus or shortfall to the member fund and
// covers a resulting negative pool from the team fund.
func (e *Engine) reconcile(ctx context.Context, tx storage.Tx, m *models.Match, rec *Reconciliation) error {
	posting, ok := calculator.ReconcileMatch(m.TotalFees(), m.Cost)
	rec.Diff = posting.Diff
	if !ok {
		return nil
	}

	verb := "surplus"
	if posting.Type == models.Expense {
		verb = "shortfall"
	}
	rec.Posted = &models.MemberFundTransaction{
		TotalAmount: posting.Amount,
		Type:        posting.Type,
		Description: fmt.Sprintf("friendly %s (%s %s)", verb, m.Date, m.Opponent),
		Date:        m.Date,
		MatchID:     m.ID,
	}
	if err := tx.InsertMemberFundTransaction(ctx, rec.Posted); err != nil {
		return err
	}

	balance, err := tx.MemberFundBalance(ctx)
	if err != nil {
		return err
	}
	amount, insolvent := calculator.Bailout(balance)
	if !insolvent {
		return nil
	}

	if err := tx.InsertMemberFundTransaction(ctx, &models.MemberFundTransaction{
		TotalAmount: amount,
		Type:        models.Income,
		Description: DescriptionBailout,
		Date:        m.Date,
		MatchID:     m.ID,
	}); err != nil {
		return err
	}
	if err := tx.InsertTeamFundTransaction(ctx, &models.TeamFundTransaction{
		Amount:      amount,
		Type:        models.Expense,
		Category:    CategoryBailout,
		Description: fmt.Sprintf("member fund shortfall after friendly (%s %s)", m.Date, m.Opponent),
		HandlerName: e.bailoutHandler,
		Date:        m.Date,
		Origin:      models.MatchOrigin(m.ID),
	}); err != nil {
		return err
	}

	revoked, err := e.RevokeAllMemberships(ctx, tx)
	if err != nil {
		return err
	}
	rec.Bailout = amount
	rec.RevokedMemberships = revoked
	return nil
}

// RevokeAllMemberships clears the member flag on every player, not only the
// attendees of the match that emptied the pool. It runs when the team fund
// bails out the member fund, signalling that dues must be collected again.
func (e *Engine) RevokeAllMemberships(ctx context.Context, tx storage.Tx) (int64, error) {
	n, err := tx.ClearAllMemberships(ctx)
	if err != nil {
		return 0, err
	}
	e.log.Warn("all memberships revoked after member fund bailout", "players", n)
	return n, nil
}

// retract removes every member-fund and team-fund row generated by a match.
func retract(ctx context.Context, tx storage.Tx, matchID string) (int64, error) {
	member, err := tx.DeleteMemberFundTransactionsByMatch(ctx, matchID)
	if err != nil {
		return 0, err
	}
	team, err := tx.DeleteTeamFundTransactionsByOrigin(ctx, models.MatchOrigin(matchID))
	if err != nil {
		return 0, err
	}
	return member + team, nil
}

// DeleteMatch retracts the match's ledger rows and deletes it with its
// attendance. Memberships revoked by an earlier bailout stay revoked.
func (e *Engine) DeleteMatch(ctx context.Context, id string) error {
	var retracted int64
	err := e.run(ctx, "delete_match", func(tx storage.Tx) error {
		if _, err := tx.GetMatch(ctx, id); err != nil {
			return err
		}
		var err error
		retracted, err = retract(ctx, tx, id)
		if err != nil {
			return err
		}
		return tx.DeleteMatch(ctx, id)
	})
	if err != nil {
		return err
	}
	e.log.Info("match deleted", "match_id", id, "retracted", retracted)
	return nil
}

// GetMatch returns a match with its attendance.
func (e *Engine) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	return e.store.GetMatch(ctx, id)
}

// ListMatches returns matches newest first.
func (e *Engine) ListMatches(ctx context.Context) ([]*models.Match, error) {
	return e.store.ListMatches(ctx)
}

// LeagueNames returns the league names already used by saved matches.
func (e *Engine) LeagueNames(ctx context.Context) ([]string, error) {
	return e.store.LeagueNames(ctx)
}
