package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePlayer(t *testing.T) {
	f := newFixture(t)
	ids := f.players(t, "Ann")
	f.recharge(t, "40", ids[0])
	require.NoError(t, f.engine.SetMembership(f.ctx, ids, true))

	p, err := f.engine.UpdatePlayer(f.ctx, ids[0], " Annie ", " 9 ")
	require.NoError(t, err)
	assert.Equal(t, "Annie", p.Name)
	assert.Equal(t, "9", p.JerseyNumber)

	got, err := f.engine.GetPlayer(f.ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Annie", got.Name)
	assert.Equal(t, "9", got.JerseyNumber)
	assert.True(t, got.IsMember)
	requireDecimal(t, "40", got.PersonalBalance)

	_, err = f.engine.UpdatePlayer(f.ctx, ids[0], "  ", "")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.engine.UpdatePlayer(f.ctx, "ghost", "Ghost", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePlayer(t *testing.T) {
	f := newFixture(t)
	ids := f.players(t, "Ann", "Ben", "Cat", "Dan")

	t.Run("player without history", func(t *testing.T) {
		require.NoError(t, f.engine.DeletePlayer(f.ctx, ids[0]))
		_, err := f.engine.GetPlayer(f.ctx, ids[0])
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, f.engine.DeletePlayer(f.ctx, ids[0]), ErrNotFound)
	})

	t.Run("player with personal rows", func(t *testing.T) {
		f.recharge(t, "25", ids[1])
		require.ErrorIs(t, f.engine.DeletePlayer(f.ctx, ids[1]), ErrDerivedEntry)
		requireDecimal(t, "25", f.balance(t, ids[1]))
	})

	t.Run("player with dues payment", func(t *testing.T) {
		_, err := f.engine.CollectDues(f.ctx, Dues{PerPerson: d("30"), PayerIDs: ids[2:3], Date: matchDay})
		require.NoError(t, err)
		require.ErrorIs(t, f.engine.DeletePlayer(f.ctx, ids[2]), ErrDerivedEntry)
	})

	t.Run("player with attendance", func(t *testing.T) {
		_, err := f.engine.SaveMatch(f.ctx, friendly("0", map[string]string{ids[3]: "0"}))
		require.NoError(t, err)
		require.ErrorIs(t, f.engine.DeletePlayer(f.ctx, ids[3]), ErrDerivedEntry)
	})

	players, err := f.engine.ListPlayers(f.ctx)
	require.NoError(t, err)
	assert.Len(t, players, 3)
	requireNoDrift(t, f)
}
