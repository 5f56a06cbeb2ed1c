package finance

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

// Dues is one collection of membership fees.
type Dues struct {
	PerPerson   decimal.Decimal
	PayerIDs    []string
	Date        civil.Date
	Description string
}

// MemberFundExpense is a manual spend from the member-dues pool.
type MemberFundExpense struct {
	Amount      decimal.Decimal
	Date        civil.Date
	Description string
}

// CollectDues posts one INCOME row for perPerson * len(payers) and grants
// membership to every payer.
func (e *Engine) CollectDues(ctx context.Context, in Dues) (*models.MemberFundTransaction, error) {
	if err := validateIDs("payer ids", in.PayerIDs); err != nil {
		return nil, err
	}
	if err := validatePositive("per-person amount", in.PerPerson); err != nil {
		return nil, err
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}

	row := &models.MemberFundTransaction{
		TotalAmount:     in.PerPerson.Mul(decimal.NewFromInt(int64(len(in.PayerIDs)))),
		PerPersonAmount: decimal.NewNullDecimal(in.PerPerson),
		Type:            models.Income,
		Description:     in.Description,
		Date:            in.Date,
		PayerIDs:        in.PayerIDs,
	}
	if err := validateCents("dues total", row.TotalAmount); err != nil {
		return nil, err
	}
	err := e.run(ctx, "collect_dues", func(tx storage.Tx) error {
		if err := requirePlayers(ctx, tx, in.PayerIDs); err != nil {
			return err
		}
		if err := tx.InsertMemberFundTransaction(ctx, row); err != nil {
			return err
		}
		n, err := tx.SetMembership(ctx, in.PayerIDs, true)
		if err != nil {
			return err
		}
		if n != int64(len(in.PayerIDs)) {
			return fmt.Errorf("%w: granted membership to %d of %d payers", ErrInvariantViolation, n, len(in.PayerIDs))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("dues collected", "id", row.ID, "payers", len(in.PayerIDs), "total", row.TotalAmount)
	return row, nil
}

// RecordMemberFundExpense posts a manual EXPENSE row. It never triggers a
// bailout, even if the pool goes negative.
func (e *Engine) RecordMemberFundExpense(ctx context.Context, in MemberFundExpense) (*models.MemberFundTransaction, error) {
	if err := validatePositive("amount", in.Amount); err != nil {
		return nil, err
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	row := &models.MemberFundTransaction{
		TotalAmount: in.Amount,
		Type:        models.Expense,
		Description: in.Description,
		Date:        in.Date,
	}
	err := e.run(ctx, "record_member_fund_expense", func(tx storage.Tx) error {
		return tx.InsertMemberFundTransaction(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteDuesEntry removes a manual member-fund row. Payers keep their
// membership; rows generated by a match fail with ErrDerivedEntry.
func (e *Engine) DeleteDuesEntry(ctx context.Context, id string) error {
	return e.run(ctx, "delete_dues_entry", func(tx storage.Tx) error {
		row, err := tx.GetMemberFundTransaction(ctx, id)
		if err != nil {
			return err
		}
		if row.MatchID != "" {
			return fmt.Errorf("%w: member fund row %s belongs to match %s", ErrDerivedEntry, id, row.MatchID)
		}
		return tx.DeleteMemberFundTransaction(ctx, id)
	})
}

// ListMemberFund returns rows newest first with their payers.
func (e *Engine) ListMemberFund(ctx context.Context) ([]*models.MemberFundTransaction, error) {
	return e.store.ListMemberFundTransactions(ctx)
}
