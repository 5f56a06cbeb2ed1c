package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

// The helpers below are the only code that writes personal transactions.
// Each pairs the row write with the equal balance delta in the same tx, so
// PersonalBalance always equals the sum of the player's rows.

func adjust(ctx context.Context, tx storage.Tx, playerID string, delta decimal.Decimal) error {
	err := tx.AdjustPlayerBalance(ctx, playerID, delta)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: balance delta against missing player %s", ErrInvariantViolation, playerID)
	}
	return err
}

// post inserts t and adds its amount to the player's balance.
func post(ctx context.Context, tx storage.Tx, t *models.PersonalTransaction) error {
	if err := adjust(ctx, tx, t.PlayerID, t.Amount); err != nil {
		return err
	}
	return tx.InsertPersonalTransaction(ctx, t)
}

// reprice rewrites t with a new amount and applies the difference.
func reprice(ctx context.Context, tx storage.Tx, t *models.PersonalTransaction, amount decimal.Decimal) error {
	if err := adjust(ctx, tx, t.PlayerID, amount.Sub(t.Amount)); err != nil {
		return err
	}
	t.Amount = amount
	return tx.UpdatePersonalTransaction(ctx, t)
}

// reverse deletes t and subtracts its amount from the player's balance.
func reverse(ctx context.Context, tx storage.Tx, t *models.PersonalTransaction) error {
	if err := adjust(ctx, tx, t.PlayerID, t.Amount.Neg()); err != nil {
		return err
	}
	return tx.DeletePersonalTransaction(ctx, t.ID)
}
