package finance

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/calculator"
	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

const (
	CategoryDiningShare   = "dining share"
	CategoryDiningSubsidy = "team dining subsidy"
)

// DiningBill is a group meal to split among participants.
type DiningBill struct {
	TotalAmount    decimal.Decimal
	ParticipantIDs []string

	// Cap is the per-person limit. Zero means the engine default.
	Cap decimal.Decimal

	Date           civil.Date
	HandlerName    string
	RestaurantName string
}

// DiningSettlement is everything settling a bill wrote.
type DiningSettlement struct {
	Record  *models.DiningRecord
	Split   calculator.DiningSplit
	Shares  []*models.PersonalTransaction
	Subsidy *models.TeamFundTransaction // nil when participants covered the bill
}

// DiningEdit changes a dining record in place. Nil fields are left alone.
//
// TotalAmount and ParticipantCount may be sent back unchanged, but any other
// value fails with ErrImmutableField.
type DiningEdit struct {
	Date           *civil.Date
	HandlerName    *string
	RestaurantName *string

	TotalAmount      *decimal.Decimal
	ParticipantCount *int
}

// SettleDining deducts the capped share from each participant and posts any
// remainder as a team-fund subsidy tagged to the new record.
func (e *Engine) SettleDining(ctx context.Context, in DiningBill) (*DiningSettlement, error) {
	if err := validateIDs("participant ids", in.ParticipantIDs); err != nil {
		return nil, err
	}
	if err := validateCents("total amount", in.TotalAmount); err != nil {
		return nil, err
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	limit := in.Cap
	if limit.IsZero() {
		limit = e.diningCap
	}
	if err := validateCents("cap", limit); err != nil {
		return nil, err
	}
	split, err := calculator.SettleDining(in.TotalAmount, len(in.ParticipantIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := &DiningSettlement{Split: split}
	err = e.run(ctx, "settle_dining", func(tx storage.Tx) error {
		if err := requirePlayers(ctx, tx, in.ParticipantIDs); err != nil {
			return err
		}

		subsidy := decimal.Zero
		if split.HasSubsidy() {
			subsidy = split.Subsidy
		}
		record := &models.DiningRecord{
			Date:             in.Date,
			TotalAmount:      in.TotalAmount,
			ParticipantCount: len(in.ParticipantIDs),
			PerPersonAmount:  split.PerPerson,
			SubsidyAmount:    subsidy,
			Cap:              limit,
			HandlerName:      in.HandlerName,
			RestaurantName:   in.RestaurantName,
		}
		if err := tx.InsertDiningRecord(ctx, record); err != nil {
			return err
		}
		out.Record = record

		out.Shares = out.Shares[:0]
		for _, id := range in.ParticipantIDs {
			share := &models.PersonalTransaction{
				PlayerID:       id,
				Amount:         split.PerPerson.Neg(),
				Category:       CategoryDiningShare,
				Description:    in.RestaurantName,
				Date:           in.Date,
				DiningRecordID: record.ID,
			}
			if err := post(ctx, tx, share); err != nil {
				return err
			}
			out.Shares = append(out.Shares, share)
		}

		if !split.HasSubsidy() {
			return nil
		}
		out.Subsidy = &models.TeamFundTransaction{
			Amount:      split.Subsidy,
			Type:        models.Expense,
			Category:    CategoryDiningSubsidy,
			Description: in.RestaurantName,
			HandlerName: in.HandlerName,
			Date:        in.Date,
			Origin:      models.DiningOrigin(record.ID),
		}
		return tx.InsertTeamFundTransaction(ctx, out.Subsidy)
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("dining settled",
		"dining_id", out.Record.ID,
		"total", in.TotalAmount,
		"participants", len(in.ParticipantIDs),
		"per_person", split.PerPerson,
		"subsidy", out.Record.SubsidyAmount,
	)
	return out, nil
}

// EditDiningMetadata updates date, handler and restaurant name. The shares
// and subsidy row the record generated are restamped with the new values in
// the same transaction; their amounts never change.
func (e *Engine) EditDiningMetadata(ctx context.Context, id string, in DiningEdit) (*models.DiningRecord, error) {
	if in.Date != nil {
		if err := validateDate(*in.Date); err != nil {
			return nil, err
		}
	}

	var record *models.DiningRecord
	err := e.run(ctx, "edit_dining_metadata", func(tx storage.Tx) error {
		var err error
		record, err = tx.GetDiningRecord(ctx, id)
		if err != nil {
			return err
		}
		if in.TotalAmount != nil && !in.TotalAmount.Equal(record.TotalAmount) {
			return fmt.Errorf("%w: total amount of dining record %s", ErrImmutableField, id)
		}
		if in.ParticipantCount != nil && *in.ParticipantCount != record.ParticipantCount {
			return fmt.Errorf("%w: participant count of dining record %s", ErrImmutableField, id)
		}

		if in.Date != nil {
			record.Date = *in.Date
		}
		if in.HandlerName != nil {
			record.HandlerName = *in.HandlerName
		}
		if in.RestaurantName != nil {
			record.RestaurantName = *in.RestaurantName
		}
		if err := tx.UpdateDiningMetadata(ctx, record); err != nil {
			return err
		}
		return restampDining(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// restampDining copies a record's date, handler and restaurant onto the rows
// it generated, the way SettleDining first wrote them.
func restampDining(ctx context.Context, tx storage.Tx, record *models.DiningRecord) error {
	shares, err := tx.ListPersonalTransactions(ctx, storage.PersonalFilter{DiningRecordID: record.ID})
	if err != nil {
		return err
	}
	for _, share := range shares {
		share.Date = record.Date
		share.Description = record.RestaurantName
		if err := tx.UpdatePersonalTransaction(ctx, share); err != nil {
			return err
		}
	}

	origin := models.DiningOrigin(record.ID)
	subsidies, err := tx.ListTeamFundTransactions(ctx, storage.TeamFundFilter{Origin: &origin})
	if err != nil {
		return err
	}
	for _, row := range subsidies {
		row.Date = record.Date
		row.Description = record.RestaurantName
		row.HandlerName = record.HandlerName
		if err := tx.UpdateTeamFundTransaction(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// DeleteDining reverses every share, removes the tagged subsidy and then the
// record itself.
func (e *Engine) DeleteDining(ctx context.Context, id string) error {
	var reversed int
	var subsidies int64
	err := e.run(ctx, "delete_dining", func(tx storage.Tx) error {
		if _, err := tx.GetDiningRecord(ctx, id); err != nil {
			return err
		}
		shares, err := tx.ListPersonalTransactions(ctx, storage.PersonalFilter{DiningRecordID: id})
		if err != nil {
			return err
		}
		for _, share := range shares {
			if err := reverse(ctx, tx, share); err != nil {
				return err
			}
		}
		reversed = len(shares)

		subsidies, err = tx.DeleteTeamFundTransactionsByOrigin(ctx, models.DiningOrigin(id))
		if err != nil {
			return err
		}
		return tx.DeleteDiningRecord(ctx, id)
	})
	if err != nil {
		return err
	}
	e.log.Info("dining deleted", "dining_id", id, "shares_reversed", reversed, "subsidy_rows", subsidies)
	return nil
}

// GetDining returns one dining record.
func (e *Engine) GetDining(ctx context.Context, id string) (*models.DiningRecord, error) {
	return e.store.GetDiningRecord(ctx, id)
}

// ListDining returns dining records newest first.
func (e *Engine) ListDining(ctx context.Context) ([]*models.DiningRecord, error) {
	return e.store.ListDiningRecords(ctx)
}
