package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

// CreatePlayer adds a player with a zero balance and no membership.
func (e *Engine) CreatePlayer(ctx context.Context, name, jerseyNumber string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("player name is required")
	}
	p := &models.Player{Name: name, JerseyNumber: strings.TrimSpace(jerseyNumber)}
	err := e.run(ctx, "create_player", func(tx storage.Tx) error {
		return tx.CreatePlayer(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("player created", "player_id", p.ID, "name", p.Name)
	return p, nil
}

func (e *Engine) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return e.store.GetPlayer(ctx, id)
}

func (e *Engine) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	return e.store.ListPlayers(ctx)
}

// SetMembership is the team manager's manual toggle. Unknown ids fail the
// whole call with ErrNotFound.
func (e *Engine) SetMembership(ctx context.Context, playerIDs []string, isMember bool) error {
	if err := validateIDs("player ids", playerIDs); err != nil {
		return err
	}
	err := e.run(ctx, "set_membership", func(tx storage.Tx) error {
		if err := requirePlayers(ctx, tx, playerIDs); err != nil {
			return err
		}
		_, err := tx.SetMembership(ctx, playerIDs, isMember)
		return err
	})
	if err != nil {
		return err
	}
	e.log.Info("membership set", "players", len(playerIDs), "is_member", isMember)
	return nil
}

// UpdatePlayer renames a player and sets the jersey number. Balance and
// membership are not touched.
func (e *Engine) UpdatePlayer(ctx context.Context, id, name, jerseyNumber string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("player name is required")
	}
	var p *models.Player
	err := e.run(ctx, "update_player", func(tx storage.Tx) error {
		var err error
		if p, err = tx.GetPlayer(ctx, id); err != nil {
			return err
		}
		p.Name = name
		p.JerseyNumber = strings.TrimSpace(jerseyNumber)
		return tx.UpdatePlayer(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePlayer removes a player with no ledger history. A player referenced
// by a personal row, an attendance or a dues payment fails with
// ErrDerivedEntry; delete or edit those records first.
func (e *Engine) DeletePlayer(ctx context.Context, id string) error {
	err := e.run(ctx, "delete_player", func(tx storage.Tx) error {
		p, err := tx.GetPlayer(ctx, id)
		if err != nil {
			return err
		}
		refs, err := tx.PlayerReferences(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: player %s is referenced by %d ledger rows", ErrDerivedEntry, id, refs)
		}
		if !p.PersonalBalance.IsZero() {
			return fmt.Errorf("%w: player %s has balance %s with no history", ErrInvariantViolation, id, p.PersonalBalance)
		}
		return tx.DeletePlayer(ctx, id)
	})
	if err != nil {
		return err
	}
	e.log.Info("player deleted", "player_id", id)
	return nil
}
