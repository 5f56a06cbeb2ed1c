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

// TeamFundEntry is a manually entered sponsorship fund movement.
type TeamFundEntry struct {
	Amount      decimal.Decimal
	Type        models.TransactionType
	Category    string
	Date        civil.Date
	HandlerName string
	Description string
}

func (in TeamFundEntry) validate() error {
	if err := validatePositive("amount", in.Amount); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return invalidf("transaction type %q", in.Type)
	}
	if strings.TrimSpace(in.Category) == "" {
		return invalidf("category is required")
	}
	return validateDate(in.Date)
}

// RecordTeamFundEntry inserts one manual team-fund row.
func (e *Engine) RecordTeamFundEntry(ctx context.Context, in TeamFundEntry) (*models.TeamFundTransaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	row := &models.TeamFundTransaction{
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		HandlerName: in.HandlerName,
		Date:        in.Date,
	}
	err := e.run(ctx, "record_team_fund_entry", func(tx storage.Tx) error {
		return tx.InsertTeamFundTransaction(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("team fund entry recorded", "id", row.ID, "type", row.Type, "amount", row.Amount, "category", row.Category)
	return row, nil
}

// UpdateTeamFundEntry rewrites a manual row. Rows generated by a dining
// settlement or match reconciliation fail with ErrDerivedEntry.
func (e *Engine) UpdateTeamFundEntry(ctx context.Context, id string, in TeamFundEntry) (*models.TeamFundTransaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var row *models.TeamFundTransaction
	err := e.run(ctx, "update_team_fund_entry", func(tx storage.Tx) error {
		var err error
		row, err = manualTeamFundRow(ctx, tx, id)
		if err != nil {
			return err
		}
		row.Amount = in.Amount
		row.Type = in.Type
		row.Category = strings.TrimSpace(in.Category)
		row.Date = in.Date
		row.HandlerName = in.HandlerName
		row.Description = in.Description
		return tx.UpdateTeamFundTransaction(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteTeamFundEntry removes a manual row.
func (e *Engine) DeleteTeamFundEntry(ctx context.Context, id string) error {
	return e.run(ctx, "delete_team_fund_entry", func(tx storage.Tx) error {
		if _, err := manualTeamFundRow(ctx, tx, id); err != nil {
			return err
		}
		return tx.DeleteTeamFundTransaction(ctx, id)
	})
}

func manualTeamFundRow(ctx context.Context, tx storage.Tx, id string) (*models.TeamFundTransaction, error) {
	row, err := tx.GetTeamFundTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Origin.IsDerived() {
		return nil, fmt.Errorf("%w: team fund row %s belongs to %s %s", ErrDerivedEntry, id, row.Origin.Kind, row.Origin.ID)
	}
	return row, nil
}

// ListTeamFund returns rows newest first. month is "YYYY-MM" or empty for all.
func (e *Engine) ListTeamFund(ctx context.Context, month string) ([]*models.TeamFundTransaction, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	return e.store.ListTeamFundTransactions(ctx, storage.TeamFundFilter{Month: month})
}

// TeamFundCategories returns the distinct categories already used for t.
func (e *Engine) TeamFundCategories(ctx context.Context, t models.TransactionType) ([]string, error) {
	if !t.Valid() {
		return nil, invalidf("transaction type %q", t)
	}
	return e.store.TeamFundCategories(ctx, t)
}
