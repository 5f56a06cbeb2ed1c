package finance

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

func validatePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return invalidf("%s must be positive, got %s", field, d)
	}
	return validateCents(field, d)
}

func validateCents(field string, d decimal.Decimal) error {
	if !models.HasCentPrecision(d) {
		return invalidf("%s %s has more than two decimal places", field, d)
	}
	if d.Abs().GreaterThan(models.MaxAmount) {
		return invalidf("%s %s exceeds %s", field, d, models.MaxAmount)
	}
	return nil
}

func validateDate(d civil.Date) error {
	if !d.IsValid() {
		return invalidf("date %q is not a calendar date", d)
	}
	return nil
}

func validateMonth(month string) error {
	if month == "" {
		return nil
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return invalidf("month %q is not YYYY-MM", month)
	}
	return nil
}

// validateIDs rejects an empty list, blank ids and duplicates.
func validateIDs(field string, ids []string) error {
	if len(ids) == 0 {
		return invalidf("%s must not be empty", field)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return invalidf("%s contains a blank id", field)
		}
		if seen[id] {
			return invalidf("%s lists %s twice", field, id)
		}
		seen[id] = true
	}
	return nil
}

// requirePlayers fails with ErrNotFound on the first unknown id.
func requirePlayers(ctx context.Context, tx storage.Tx, ids []string) error {
	for _, id := range ids {
		if _, err := tx.GetPlayer(ctx, id); err != nil {
			return fmt.Errorf("participant: %w", err)
		}
	}
	return nil
}
