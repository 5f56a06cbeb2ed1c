package finance

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnifc/clubledger/internal/models"
)

func TestTeamFundEntryLifecycle(t *testing.T) {
	f := newFixture(t)

	row, err := f.engine.RecordTeamFundEntry(f.ctx, TeamFundEntry{
		Amount:      d("1200"),
		Type:        models.Income,
		Category:    " sponsorship ",
		Date:        matchDay,
		HandlerName: "Lee",
		Description: "shirt sponsor",
	})
	require.NoError(t, err)
	assert.Equal(t, "sponsorship", row.Category)
	assert.False(t, row.Origin.IsDerived())

	_, err = f.engine.RecordTeamFundEntry(f.ctx, TeamFundEntry{
		Amount: d("90"), Type: models.Expense, Category: "pitch hire",
		Date: civil.Date{Year: 2025, Month: 5, Day: 2},
	})
	require.NoError(t, err)
	requireDecimal(t, "1110", f.summary(t).TeamFund)

	updated, err := f.engine.UpdateTeamFundEntry(f.ctx, row.ID, TeamFundEntry{
		Amount: d("1000"), Type: models.Income, Category: "sponsorship", Date: matchDay,
	})
	require.NoError(t, err)
	requireDecimal(t, "1000", updated.Amount)
	requireDecimal(t, "910", f.summary(t).TeamFund)

	april, err := f.engine.ListTeamFund(f.ctx, "2025-04")
	require.NoError(t, err)
	assert.Len(t, april, 1)

	categories, err := f.engine.TeamFundCategories(f.ctx, models.Expense)
	require.NoError(t, err)
	assert.Equal(t, []string{"pitch hire"}, categories)

	require.NoError(t, f.engine.DeleteTeamFundEntry(f.ctx, row.ID))
	requireDecimal(t, "-90", f.summary(t).TeamFund)
	require.ErrorIs(t, f.engine.DeleteTeamFundEntry(f.ctx, row.ID), ErrNotFound)
}

func TestTeamFundEntryValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		entry TeamFundEntry
	}{
		{"zero amount", TeamFundEntry{Amount: d("0"), Type: models.Income, Category: "x", Date: matchDay}},
		{"negative amount", TeamFundEntry{Amount: d("-5"), Type: models.Income, Category: "x", Date: matchDay}},
		{"unknown type", TeamFundEntry{Amount: d("5"), Type: "TRANSFER", Category: "x", Date: matchDay}},
		{"missing category", TeamFundEntry{Amount: d("5"), Type: models.Expense, Date: matchDay}},
		{"amount too large", TeamFundEntry{Amount: d("1e17"), Type: models.Income, Category: "x", Date: matchDay}},
		{"invalid date", TeamFundEntry{Amount: d("5"), Type: models.Expense, Category: "x", Date: civil.Date{Year: 2025, Month: 2, Day: 30}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.RecordTeamFundEntry(f.ctx, tt.entry)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := f.engine.ListTeamFund(f.ctx, "April")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.engine.TeamFundCategories(f.ctx, "BOTH")
	require.ErrorIs(t, err, ErrInvalidInput)
}
