package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testDate = civil.Date{Year: 2025, Month: 3, Day: 15}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var alice, bob *models.Player
	if err := store.InTx(ctx, func(tx storage.Tx) error {
		alice = &models.Player{Name: "Alice", JerseyNumber: "7"}
		bob = &models.Player{Name: "Bob", IsMember: true}
		if err := tx.CreatePlayer(ctx, alice); err != nil {
			return err
		}
		return tx.CreatePlayer(ctx, bob)
	}); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	t.Run("CreatePlayer generates ID and zero balance", func(t *testing.T) {
		got, err := store.GetPlayer(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetPlayer failed: %v", err)
		}
		if got.Name != "Alice" || got.JerseyNumber != "7" {
			t.Errorf("unexpected player: %+v", got)
		}
		if !got.PersonalBalance.IsZero() {
			t.Errorf("balance = %s, want 0", got.PersonalBalance)
		}
		if got.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetPlayer returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetPlayer(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AdjustPlayerBalance keeps cents exact", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			if err := tx.AdjustPlayerBalance(ctx, alice.ID, amount("10.10")); err != nil {
				return err
			}
			return tx.AdjustPlayerBalance(ctx, alice.ID, amount("-0.20"))
		})
		if err != nil {
			t.Fatalf("AdjustPlayerBalance failed: %v", err)
		}
		got, _ := store.GetPlayer(ctx, alice.ID)
		if !got.PersonalBalance.Equal(amount("9.90")) {
			t.Errorf("balance = %s, want 9.90", got.PersonalBalance)
		}
	})

	t.Run("AdjustPlayerBalance on missing player fails", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.AdjustPlayerBalance(ctx, "ghost", amount("1"))
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Amounts beyond int64 cents are rejected", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.InsertPersonalTransaction(ctx, &models.PersonalTransaction{
				PlayerID: alice.ID, Amount: amount("1e20"), Category: "recharge", Date: testDate,
			})
		})
		if !errors.Is(err, storage.ErrAmountOutOfRange) {
			t.Errorf("expected ErrAmountOutOfRange, got %v", err)
		}
		err = store.InTx(ctx, func(tx storage.Tx) error {
			return tx.AdjustPlayerBalance(ctx, alice.ID, amount("-1e20"))
		})
		if !errors.Is(err, storage.ErrAmountOutOfRange) {
			t.Errorf("expected ErrAmountOutOfRange, got %v", err)
		}
	})

	t.Run("InTx rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.InTx(ctx, func(tx storage.Tx) error {
			if err := tx.AdjustPlayerBalance(ctx, bob.ID, amount("500")); err != nil {
				return err
			}
			if err := tx.InsertPersonalTransaction(ctx, &models.PersonalTransaction{
				PlayerID: bob.ID, Amount: amount("500"), Category: "recharge", Date: testDate,
			}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		got, _ := store.GetPlayer(ctx, bob.ID)
		if !got.PersonalBalance.IsZero() {
			t.Errorf("balance = %s after rollback, want 0", got.PersonalBalance)
		}
		rows, _ := store.ListPersonalTransactions(ctx, storage.PersonalFilter{PlayerID: bob.ID})
		if len(rows) != 0 {
			t.Errorf("expected no rows after rollback, got %d", len(rows))
		}
	})

	t.Run("Membership flags", func(t *testing.T) {
		var revoked int64
		err := store.InTx(ctx, func(tx storage.Tx) error {
			if _, err := tx.SetMembership(ctx, []string{alice.ID}, true); err != nil {
				return err
			}
			var err error
			revoked, err = tx.ClearAllMemberships(ctx)
			return err
		})
		if err != nil {
			t.Fatalf("membership update failed: %v", err)
		}
		if revoked != 2 {
			t.Errorf("revoked = %d, want 2", revoked)
		}
		players, _ := store.ListPlayers(ctx)
		for _, p := range players {
			if p.IsMember {
				t.Errorf("%s still a member", p.Name)
			}
		}
	})
}

func TestTeamFundOrigins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var match *models.Match
	var dining *models.DiningRecord
	err := store.InTx(ctx, func(tx storage.Tx) error {
		match = &models.Match{Date: testDate, Opponent: "Old Boys", Type: models.MatchFriendly, Cost: amount("500")}
		if err := tx.SaveMatch(ctx, match); err != nil {
			return err
		}
		dining = &models.DiningRecord{
			Date: testDate, TotalAmount: amount("250"), ParticipantCount: 2,
			PerPersonAmount: amount("100"), SubsidyAmount: amount("50"), Cap: amount("100"),
		}
		if err := tx.InsertDiningRecord(ctx, dining); err != nil {
			return err
		}
		rows := []*models.TeamFundTransaction{
			{Amount: amount("1000"), Type: models.Income, Category: "sponsorship", Date: testDate},
			{Amount: amount("50"), Type: models.Expense, Category: "dining subsidy", Date: testDate, Origin: models.DiningOrigin(dining.ID)},
			{Amount: amount("400"), Type: models.Expense, Category: "member-fund bailout", Date: testDate, Origin: models.MatchOrigin(match.ID)},
		}
		for _, r := range rows {
			if err := tx.InsertTeamFundTransaction(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	balance, err := store.TeamFundBalance(ctx)
	if err != nil {
		t.Fatalf("TeamFundBalance failed: %v", err)
	}
	if !balance.Equal(amount("550")) {
		t.Errorf("balance = %s, want 550", balance)
	}

	origin := models.MatchOrigin(match.ID)
	tagged, err := store.ListTeamFundTransactions(ctx, storage.TeamFundFilter{Origin: &origin})
	if err != nil {
		t.Fatalf("ListTeamFundTransactions failed: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Origin != origin {
		t.Fatalf("expected one match-tagged row, got %+v", tagged)
	}

	var removed int64
	err = store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		removed, err = tx.DeleteTeamFundTransactionsByOrigin(ctx, models.DiningOrigin(dining.ID))
		return err
	})
	if err != nil {
		t.Fatalf("DeleteTeamFundTransactionsByOrigin failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	categories, err := store.TeamFundCategories(ctx, models.Expense)
	if err != nil {
		t.Fatalf("TeamFundCategories failed: %v", err)
	}
	if len(categories) != 1 || categories[0] != "member-fund bailout" {
		t.Errorf("categories = %v", categories)
	}

	march := "2025-03"
	rows, _ := store.ListTeamFundTransactions(ctx, storage.TeamFundFilter{Month: march})
	if len(rows) != 2 {
		t.Errorf("rows in %s = %d, want 2", march, len(rows))
	}
	rows, _ = store.ListTeamFundTransactions(ctx, storage.TeamFundFilter{Month: "2024-01"})
	if len(rows) != 0 {
		t.Errorf("rows in 2024-01 = %d, want 0", len(rows))
	}
}

func TestDiningRecordReferencedRowsBlockDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.InTx(ctx, func(tx storage.Tx) error {
		p := &models.Player{Name: "Carol"}
		if err := tx.CreatePlayer(ctx, p); err != nil {
			return err
		}
		r := &models.DiningRecord{Date: testDate, TotalAmount: amount("60"), ParticipantCount: 1,
			PerPersonAmount: amount("60"), SubsidyAmount: decimal.Zero, Cap: amount("100")}
		if err := tx.InsertDiningRecord(ctx, r); err != nil {
			return err
		}
		if err := tx.InsertPersonalTransaction(ctx, &models.PersonalTransaction{
			PlayerID: p.ID, Amount: amount("-60"), Category: "dining share", Date: testDate, DiningRecordID: r.ID,
		}); err != nil {
			return err
		}
		return tx.DeleteDiningRecord(ctx, r.ID)
	})
	if err == nil {
		t.Fatal("expected foreign key violation deleting a referenced dining record")
	}
}

func TestMatchAttendanceReplace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var a, b *models.Player
	match := &models.Match{Date: testDate, Opponent: "Rivals", Type: models.MatchLeague, LeagueName: "Alumni Cup"}
	err := store.InTx(ctx, func(tx storage.Tx) error {
		a = &models.Player{Name: "A"}
		b = &models.Player{Name: "B"}
		if err := tx.CreatePlayer(ctx, a); err != nil {
			return err
		}
		if err := tx.CreatePlayer(ctx, b); err != nil {
			return err
		}
		match.Attendances = []models.Attendance{
			{PlayerID: a.ID, Goals: 2},
			{PlayerID: b.ID, Assists: 1},
		}
		return tx.SaveMatch(ctx, match)
	})
	if err != nil {
		t.Fatalf("SaveMatch failed: %v", err)
	}

	ours, theirs := 3, 1
	match.OurScore, match.TheirScore = &ours, &theirs
	match.Result = "WIN"
	match.Attendances = []models.Attendance{{PlayerID: b.ID, Goals: 1, Fee: amount("20")}}
	if err := store.InTx(ctx, func(tx storage.Tx) error { return tx.SaveMatch(ctx, match) }); err != nil {
		t.Fatalf("SaveMatch update failed: %v", err)
	}

	got, err := store.GetMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if len(got.Attendances) != 1 || got.Attendances[0].PlayerID != b.ID {
		t.Fatalf("attendances not replaced: %+v", got.Attendances)
	}
	if !got.Attendances[0].Fee.Equal(amount("20")) {
		t.Errorf("fee = %s, want 20", got.Attendances[0].Fee)
	}
	if got.OurScore == nil || *got.OurScore != 3 || got.Result != "WIN" {
		t.Errorf("score not saved: %+v", got)
	}

	missing := &models.Match{ID: "nope", Date: testDate, Opponent: "X", Type: models.MatchLeague}
	err = store.InTx(ctx, func(tx storage.Tx) error { return tx.SaveMatch(ctx, missing) })
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating missing match, got %v", err)
	}

	names, err := store.LeagueNames(ctx)
	if err != nil {
		t.Fatalf("LeagueNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Alumni Cup" {
		t.Errorf("league names = %v, want [Alumni Cup]", names)
	}

	refs, err := store.PlayerReferences(ctx, b.ID)
	if err != nil {
		t.Fatalf("PlayerReferences failed: %v", err)
	}
	if refs != 1 {
		t.Errorf("references = %d, want 1", refs)
	}
	err = store.InTx(ctx, func(tx storage.Tx) error { return tx.DeletePlayer(ctx, b.ID) })
	if err == nil {
		t.Error("expected foreign key violation deleting an attending player")
	}
}

func TestUpdateAndDeletePlayer(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := &models.Player{Name: "Carl", JerseyNumber: "4"}
	err := store.InTx(ctx, func(tx storage.Tx) error {
		if err := tx.CreatePlayer(ctx, p); err != nil {
			return err
		}
		p.Name, p.JerseyNumber = "Carlos", ""
		return tx.UpdatePlayer(ctx, p)
	})
	if err != nil {
		t.Fatalf("UpdatePlayer failed: %v", err)
	}
	got, err := store.GetPlayer(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got.Name != "Carlos" || got.JerseyNumber != "" {
		t.Errorf("unexpected player after update: %+v", got)
	}

	refs, err := store.PlayerReferences(ctx, p.ID)
	if err != nil || refs != 0 {
		t.Fatalf("PlayerReferences = %d, %v; want 0", refs, err)
	}
	if err := store.InTx(ctx, func(tx storage.Tx) error { return tx.DeletePlayer(ctx, p.ID) }); err != nil {
		t.Fatalf("DeletePlayer failed: %v", err)
	}
	if _, err := store.GetPlayer(ctx, p.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	for name, fn := range map[string]func(tx storage.Tx) error{
		"update": func(tx storage.Tx) error { return tx.UpdatePlayer(ctx, &models.Player{ID: "ghost", Name: "G"}) },
		"delete": func(tx storage.Tx) error { return tx.DeletePlayer(ctx, "ghost") },
	} {
		if err := store.InTx(ctx, fn); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("%s missing player: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestMemberFundPayers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var payers []string
	err := store.InTx(ctx, func(tx storage.Tx) error {
		for _, name := range []string{"P1", "P2"} {
			p := &models.Player{Name: name}
			if err := tx.CreatePlayer(ctx, p); err != nil {
				return err
			}
			payers = append(payers, p.ID)
		}
		if err := tx.InsertMemberFundTransaction(ctx, &models.MemberFundTransaction{
			TotalAmount:     amount("200"),
			PerPersonAmount: decimal.NewNullDecimal(amount("100")),
			Type:            models.Income,
			Date:            testDate,
			PayerIDs:        payers,
		}); err != nil {
			return err
		}
		return tx.InsertMemberFundTransaction(ctx, &models.MemberFundTransaction{
			TotalAmount: amount("30"), Type: models.Expense, Date: testDate,
		})
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	rows, err := store.ListMemberFundTransactions(ctx)
	if err != nil {
		t.Fatalf("ListMemberFundTransactions failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	var income *models.MemberFundTransaction
	for _, r := range rows {
		if r.Type == models.Income {
			income = r
		}
	}
	if income == nil || len(income.PayerIDs) != 2 {
		t.Fatalf("payers not loaded: %+v", income)
	}
	if !income.PerPersonAmount.Valid || !income.PerPersonAmount.Decimal.Equal(amount("100")) {
		t.Errorf("per person = %v, want 100", income.PerPersonAmount)
	}

	one, err := store.GetMemberFundTransaction(ctx, income.ID)
	if err != nil {
		t.Fatalf("GetMemberFundTransaction failed: %v", err)
	}
	if len(one.PayerIDs) != 2 {
		t.Errorf("payers = %v, want 2", one.PayerIDs)
	}

	balance, _ := store.MemberFundBalance(ctx)
	if !balance.Equal(amount("170")) {
		t.Errorf("balance = %s, want 170", balance)
	}
}
