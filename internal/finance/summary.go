package finance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/calculator"
	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

// Summary is a snapshot of the three ledgers.
type Summary struct {
	TeamFund      decimal.Decimal
	MemberFund    decimal.Decimal
	PersonalTotal decimal.Decimal
	Players       int
	Members       int
}

// Summary reads every balance in one transaction so the figures agree.
func (e *Engine) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{}
	err := e.store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		if s.TeamFund, err = tx.TeamFundBalance(ctx); err != nil {
			return err
		}
		if s.MemberFund, err = tx.MemberFundBalance(ctx); err != nil {
			return err
		}
		players, err := tx.ListPlayers(ctx)
		if err != nil {
			return err
		}
		s.PersonalTotal = decimal.Zero
		for _, p := range players {
			s.PersonalTotal = s.PersonalTotal.Add(p.PersonalBalance)
			if p.IsMember {
				s.Members++
			}
		}
		s.Players = len(players)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// AuditBalances returns every player whose stored balance differs from the
// sum of their personal rows. It is empty unless the store was modified
// outside the engine.
func (e *Engine) AuditBalances(ctx context.Context) ([]calculator.BalanceDrift, error) {
	var drift []calculator.BalanceDrift
	err := e.store.InTx(ctx, func(tx storage.Tx) error {
		players, err := tx.ListPlayers(ctx)
		if err != nil {
			return err
		}
		rows, err := tx.ListPersonalTransactions(ctx, storage.PersonalFilter{})
		if err != nil {
			return err
		}
		byPlayer := make(map[string][]*models.PersonalTransaction, len(players))
		for _, r := range rows {
			byPlayer[r.PlayerID] = append(byPlayer[r.PlayerID], r)
		}
		drift = calculator.FindDrift(players, byPlayer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(drift) > 0 {
		e.log.Warn("personal balance drift detected", "players", len(drift))
	}
	return drift, nil
}
