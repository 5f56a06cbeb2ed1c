package finance

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

// PersonalBatch applies one signed amount to several personal accounts,
// e.g. a uniform recharge (positive) or deduction (negative).
type PersonalBatch struct {
	PlayerIDs   []string
	Amount      decimal.Decimal
	Category    string
	Date        civil.Date
	Description string
}

// PersonalEdit is the new content of a single personal row.
type PersonalEdit struct {
	Amount      decimal.Decimal
	Date        civil.Date
	Description string
}

// RecordPersonalBatch posts one row per player. Either every player is
// updated or none is.
func (e *Engine) RecordPersonalBatch(ctx context.Context, in PersonalBatch) ([]*models.PersonalTransaction, error) {
	if err := validateIDs("player ids", in.PlayerIDs); err != nil {
		return nil, err
	}
	if in.Amount.IsZero() {
		return nil, invalidf("amount must not be zero")
	}
	if err := validateCents("amount", in.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, invalidf("category is required")
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}

	rows := make([]*models.PersonalTransaction, 0, len(in.PlayerIDs))
	err := e.run(ctx, "record_personal_batch", func(tx storage.Tx) error {
		if err := requirePlayers(ctx, tx, in.PlayerIDs); err != nil {
			return err
		}
		for _, id := range in.PlayerIDs {
			row := &models.PersonalTransaction{
				PlayerID:    id,
				Amount:      in.Amount,
				Category:    strings.TrimSpace(in.Category),
				Description: in.Description,
				Date:        in.Date,
			}
			if err := post(ctx, tx, row); err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("personal batch recorded", "players", len(rows), "amount", in.Amount, "category", in.Category)
	return rows, nil
}

// EditPersonalEntry changes a manual row and moves the player's balance by
// the difference.
func (e *Engine) EditPersonalEntry(ctx context.Context, id string, in PersonalEdit) (*models.PersonalTransaction, error) {
	if in.Amount.IsZero() {
		return nil, invalidf("amount must not be zero")
	}
	if err := validateCents("amount", in.Amount); err != nil {
		return nil, err
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}

	var row *models.PersonalTransaction
	err := e.run(ctx, "edit_personal_entry", func(tx storage.Tx) error {
		var err error
		row, err = manualPersonalRow(ctx, tx, id)
		if err != nil {
			return err
		}
		row.Date = in.Date
		row.Description = in.Description
		return reprice(ctx, tx, row, in.Amount)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// DeletePersonalEntry removes a manual row and reverts its balance effect.
func (e *Engine) DeletePersonalEntry(ctx context.Context, id string) error {
	return e.run(ctx, "delete_personal_entry", func(tx storage.Tx) error {
		row, err := manualPersonalRow(ctx, tx, id)
		if err != nil {
			return err
		}
		return reverse(ctx, tx, row)
	})
}

func manualPersonalRow(ctx context.Context, tx storage.Tx, id string) (*models.PersonalTransaction, error) {
	row, err := tx.GetPersonalTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.DiningRecordID != "" {
		return nil, fmt.Errorf("%w: personal row %s belongs to dining record %s", ErrDerivedEntry, id, row.DiningRecordID)
	}
	return row, nil
}

// ListPersonal returns rows newest first, for one player or for everyone.
func (e *Engine) ListPersonal(ctx context.Context, playerID string) ([]*models.PersonalTransaction, error) {
	return e.store.ListPersonalTransactions(ctx, storage.PersonalFilter{PlayerID: playerID})
}
