package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/auth"
	"github.com/alumnifc/clubledger/internal/finance"
	"github.com/alumnifc/clubledger/internal/middleware"
	"github.com/alumnifc/clubledger/internal/storage/sqlite"
	"github.com/alumnifc/clubledger/pkg/clubapi"
)

var testDay = civil.Date{Year: 2025, Month: 5, Day: 3}

type clients struct {
	players clubapi.PlayerServiceClient
	finance clubapi.FinanceServiceClient
	matches clubapi.MatchServiceClient
	auth    clubapi.AuthServiceClient
}

// setupTestServer serves every service over a temp database. When jwt is
// non-nil the RequireAuth interceptor guards everything except Login.
func setupTestServer(t *testing.T, jwt *auth.JWTManager, operators map[string]string) clients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := finance.New(store, finance.WithLogger(logger))

	var opts []connect.HandlerOption
	if jwt != nil {
		opts = append(opts, connect.WithInterceptors(
			middleware.RequireAuth(jwt, clubapi.AuthServiceLoginProcedure),
			middleware.LoggingInterceptor(logger),
		))
	}

	mux := http.NewServeMux()
	mux.Handle(clubapi.NewPlayerServiceHandler(NewPlayerService(engine), opts...))
	mux.Handle(clubapi.NewFinanceServiceHandler(NewFinanceService(engine), opts...))
	mux.Handle(clubapi.NewMatchServiceHandler(NewMatchService(engine), opts...))
	if jwt != nil {
		svc := NewAuthService(auth.NewOperatorAuthenticator(operators), jwt, logger)
		mux.Handle(clubapi.NewAuthServiceHandler(svc, opts...))
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return clients{
		players: clubapi.NewPlayerServiceClient(http.DefaultClient, server.URL),
		finance: clubapi.NewFinanceServiceClient(http.DefaultClient, server.URL),
		matches: clubapi.NewMatchServiceClient(http.DefaultClient, server.URL),
		auth:    clubapi.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createPlayers(t *testing.T, c clients, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		resp, err := c.players.CreatePlayer(context.Background(), connect.NewRequest(&clubapi.CreatePlayerRequest{Name: name}))
		if err != nil {
			t.Fatalf("CreatePlayer(%s) failed: %v", name, err)
		}
		ids[i] = resp.Msg.Player.ID
	}
	return ids
}

func TestCreateAndListPlayers(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()

	resp, err := c.players.CreatePlayer(ctx, connect.NewRequest(&clubapi.CreatePlayerRequest{
		Name:         "Ann",
		JerseyNumber: "7",
	}))
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	p := resp.Msg.Player
	if p.ID == "" {
		t.Error("expected non-empty player ID")
	}
	if p.JerseyNumber != "7" {
		t.Errorf("jersey: expected '7', got '%s'", p.JerseyNumber)
	}
	if !p.PersonalBalance.IsZero() || p.IsMember {
		t.Errorf("new player should start empty, got %+v", p)
	}

	createPlayers(t, c, "Ben")
	list, err := c.players.ListPlayers(ctx, connect.NewRequest(&clubapi.ListPlayersRequest{}))
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(list.Msg.Players) != 2 {
		t.Errorf("players: expected 2, got %d", len(list.Msg.Players))
	}
}

func TestGetPlayer_NotFound(t *testing.T) {
	c := setupTestServer(t, nil, nil)

	_, err := c.players.GetPlayer(context.Background(), connect.NewRequest(&clubapi.GetPlayerRequest{PlayerID: "nonexistent-id"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestCreatePlayer_InvalidArgument(t *testing.T) {
	c := setupTestServer(t, nil, nil)

	_, err := c.players.CreatePlayer(context.Background(), connect.NewRequest(&clubapi.CreatePlayerRequest{Name: "  "}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestUpdateAndDeletePlayer(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()
	ids := createPlayers(t, c, "Ann", "Ben")

	resp, err := c.players.UpdatePlayer(ctx, connect.NewRequest(&clubapi.UpdatePlayerRequest{
		PlayerID:     ids[0],
		Name:         "Annie",
		JerseyNumber: "10",
	}))
	if err != nil {
		t.Fatalf("UpdatePlayer failed: %v", err)
	}
	if resp.Msg.Player.Name != "Annie" || resp.Msg.Player.JerseyNumber != "10" {
		t.Errorf("unexpected player after update: %+v", resp.Msg.Player)
	}

	_, err = c.players.UpdatePlayer(ctx, connect.NewRequest(&clubapi.UpdatePlayerRequest{PlayerID: ids[0]}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument for blank name, got %v", err)
	}

	if _, err := c.finance.RecordPersonalBatch(ctx, connect.NewRequest(&clubapi.RecordPersonalBatchRequest{
		PlayerIDs: ids[1:], Amount: dec("20"), Category: "recharge", Date: testDay,
	})); err != nil {
		t.Fatalf("RecordPersonalBatch failed: %v", err)
	}
	_, err = c.players.DeletePlayer(ctx, connect.NewRequest(&clubapi.DeletePlayerRequest{PlayerID: ids[1]}))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("expected FailedPrecondition deleting a player with history, got %v", err)
	}

	if _, err := c.players.DeletePlayer(ctx, connect.NewRequest(&clubapi.DeletePlayerRequest{PlayerID: ids[0]})); err != nil {
		t.Fatalf("DeletePlayer failed: %v", err)
	}
	_, err = c.players.GetPlayer(ctx, connect.NewRequest(&clubapi.GetPlayerRequest{PlayerID: ids[0]}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}

func TestListLeagueNames(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()

	for _, league := range []string{"Sunday League", "Alumni Cup", "Sunday League"} {
		_, err := c.matches.SaveMatch(ctx, connect.NewRequest(&clubapi.SaveMatchRequest{Match: &clubapi.Match{
			Date: testDay, Opponent: "Rovers", Type: "LEAGUE", LeagueName: league,
		}}))
		if err != nil {
			t.Fatalf("SaveMatch(%s) failed: %v", league, err)
		}
	}

	resp, err := c.matches.ListLeagueNames(ctx, connect.NewRequest(&clubapi.ListLeagueNamesRequest{}))
	if err != nil {
		t.Fatalf("ListLeagueNames failed: %v", err)
	}
	want := []string{"Alumni Cup", "Sunday League"}
	if len(resp.Msg.LeagueNames) != len(want) {
		t.Fatalf("league names: expected %v, got %v", want, resp.Msg.LeagueNames)
	}
	for i := range want {
		if resp.Msg.LeagueNames[i] != want[i] {
			t.Errorf("league names[%d]: expected %s, got %s", i, want[i], resp.Msg.LeagueNames[i])
		}
	}
}

func TestSettleDiningOverRPC(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()
	ids := createPlayers(t, c, "Ann", "Ben", "Cat")

	resp, err := c.finance.SettleDining(ctx, connect.NewRequest(&clubapi.SettleDiningRequest{
		TotalAmount:    dec("450"),
		ParticipantIDs: ids,
		Date:           testDay,
		RestaurantName: "Golden Dragon",
	}))
	if err != nil {
		t.Fatalf("SettleDining failed: %v", err)
	}
	if !resp.Msg.PerPerson.Equal(dec("100")) {
		t.Errorf("per person: expected 100, got %s", resp.Msg.PerPerson)
	}
	if !resp.Msg.Subsidy.Equal(dec("150")) {
		t.Errorf("subsidy: expected 150, got %s", resp.Msg.Subsidy)
	}
	if len(resp.Msg.Shares) != 3 {
		t.Fatalf("shares: expected 3, got %d", len(resp.Msg.Shares))
	}

	team, err := c.finance.ListTeamFund(ctx, connect.NewRequest(&clubapi.ListTeamFundRequest{}))
	if err != nil {
		t.Fatalf("ListTeamFund failed: %v", err)
	}
	if len(team.Msg.Transactions) != 1 || team.Msg.Transactions[0].DiningRecordID != resp.Msg.Record.ID {
		t.Errorf("expected one subsidy row tagged to the record, got %+v", team.Msg.Transactions)
	}
	if !team.Msg.Balance.Equal(dec("-150")) {
		t.Errorf("team fund balance: expected -150, got %s", team.Msg.Balance)
	}

	// Derived rows are owned by the record.
	_, err = c.finance.DeletePersonalEntry(ctx, connect.NewRequest(&clubapi.DeletePersonalEntryRequest{ID: resp.Msg.Shares[0].ID}))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("expected FailedPrecondition deleting a share, got %v", err)
	}

	// Changing the total would desynchronise the posted rows.
	total := dec("500")
	_, err = c.finance.EditDiningMetadata(ctx, connect.NewRequest(&clubapi.EditDiningMetadataRequest{
		ID:          resp.Msg.Record.ID,
		TotalAmount: &total,
	}))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("expected FailedPrecondition editing the total, got %v", err)
	}

	if _, err := c.finance.DeleteDining(ctx, connect.NewRequest(&clubapi.DeleteDiningRequest{ID: resp.Msg.Record.ID})); err != nil {
		t.Fatalf("DeleteDining failed: %v", err)
	}
	sum, err := c.finance.GetSummary(ctx, connect.NewRequest(&clubapi.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if !sum.Msg.TeamFundBalance.IsZero() || !sum.Msg.PersonalTotal.IsZero() {
		t.Errorf("expected everything refunded, got %+v", sum.Msg)
	}
}

func TestSaveFriendlyTriggersBailout(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()
	ids := createPlayers(t, c, "Ann", "Ben")

	if _, err := c.players.SetMembership(ctx, connect.NewRequest(&clubapi.SetMembershipRequest{PlayerIDs: ids, IsMember: true})); err != nil {
		t.Fatalf("SetMembership failed: %v", err)
	}

	resp, err := c.matches.SaveMatch(ctx, connect.NewRequest(&clubapi.SaveMatchRequest{Match: &clubapi.Match{
		Date:     testDay,
		Opponent: "Old Boys XI",
		Type:     "FRIENDLY",
		Cost:     dec("150"),
		Attendances: []clubapi.Attendance{
			{PlayerID: ids[0], Fee: dec("50"), Goals: 2},
			{PlayerID: ids[1], Fee: dec("50")},
		},
	}}))
	if err != nil {
		t.Fatalf("SaveMatch failed: %v", err)
	}
	if resp.Msg.Match.ID == "" {
		t.Error("expected generated match ID")
	}
	if !resp.Msg.Diff.Equal(dec("-50")) {
		t.Errorf("diff: expected -50, got %s", resp.Msg.Diff)
	}
	if !resp.Msg.Bailout.Equal(dec("50")) {
		t.Errorf("bailout: expected 50, got %s", resp.Msg.Bailout)
	}
	if resp.Msg.RevokedMemberships != 2 {
		t.Errorf("revoked: expected 2, got %d", resp.Msg.RevokedMemberships)
	}

	sum, err := c.finance.GetSummary(ctx, connect.NewRequest(&clubapi.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if !sum.Msg.MemberFundBalance.IsZero() {
		t.Errorf("member fund: expected 0, got %s", sum.Msg.MemberFundBalance)
	}
	if !sum.Msg.TeamFundBalance.Equal(dec("-50")) {
		t.Errorf("team fund: expected -50, got %s", sum.Msg.TeamFundBalance)
	}
	if sum.Msg.MemberCount != 0 {
		t.Errorf("members: expected 0, got %d", sum.Msg.MemberCount)
	}

	got, err := c.matches.GetMatch(ctx, connect.NewRequest(&clubapi.GetMatchRequest{ID: resp.Msg.Match.ID}))
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if len(got.Msg.Match.Attendances) != 2 {
		t.Errorf("attendances: expected 2, got %d", len(got.Msg.Match.Attendances))
	}

	if _, err := c.matches.DeleteMatch(ctx, connect.NewRequest(&clubapi.DeleteMatchRequest{ID: resp.Msg.Match.ID})); err != nil {
		t.Fatalf("DeleteMatch failed: %v", err)
	}
	sum, err = c.finance.GetSummary(ctx, connect.NewRequest(&clubapi.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if !sum.Msg.TeamFundBalance.IsZero() || !sum.Msg.MemberFundBalance.IsZero() {
		t.Errorf("expected match rows retracted, got %+v", sum.Msg)
	}
}

func TestSaveMatch_MissingMatch(t *testing.T) {
	c := setupTestServer(t, nil, nil)

	_, err := c.matches.SaveMatch(context.Background(), connect.NewRequest(&clubapi.SaveMatchRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestCollectDuesAndAudit(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()
	ids := createPlayers(t, c, "Ann", "Ben", "Cat")

	resp, err := c.finance.CollectDues(ctx, connect.NewRequest(&clubapi.CollectDuesRequest{
		PerPersonAmount: dec("30"),
		PayerIDs:        ids[:2],
		Date:            testDay,
	}))
	if err != nil {
		t.Fatalf("CollectDues failed: %v", err)
	}
	if !resp.Msg.Transaction.TotalAmount.Equal(dec("60")) {
		t.Errorf("total: expected 60, got %s", resp.Msg.Transaction.TotalAmount)
	}
	if resp.Msg.Transaction.PerPersonAmount == nil || !resp.Msg.Transaction.PerPersonAmount.Equal(dec("30")) {
		t.Errorf("per person: expected 30, got %v", resp.Msg.Transaction.PerPersonAmount)
	}

	list, err := c.finance.ListMemberFund(ctx, connect.NewRequest(&clubapi.ListMemberFundRequest{}))
	if err != nil {
		t.Fatalf("ListMemberFund failed: %v", err)
	}
	if !list.Msg.Balance.Equal(dec("60")) {
		t.Errorf("balance: expected 60, got %s", list.Msg.Balance)
	}

	sum, err := c.finance.GetSummary(ctx, connect.NewRequest(&clubapi.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if sum.Msg.MemberCount != 2 || sum.Msg.PlayerCount != 3 {
		t.Errorf("expected 2 of 3 members, got %+v", sum.Msg)
	}

	audit, err := c.finance.AuditBalances(ctx, connect.NewRequest(&clubapi.AuditBalancesRequest{}))
	if err != nil {
		t.Fatalf("AuditBalances failed: %v", err)
	}
	if len(audit.Msg.Drift) != 0 {
		t.Errorf("expected no drift, got %+v", audit.Msg.Drift)
	}
}

func TestPersonalBatchOverRPC(t *testing.T) {
	c := setupTestServer(t, nil, nil)
	ctx := context.Background()
	ids := createPlayers(t, c, "Ann", "Ben")

	resp, err := c.finance.RecordPersonalBatch(ctx, connect.NewRequest(&clubapi.RecordPersonalBatchRequest{
		PlayerIDs: ids,
		Amount:    dec("200"),
		Category:  "recharge",
		Date:      testDay,
	}))
	if err != nil {
		t.Fatalf("RecordPersonalBatch failed: %v", err)
	}
	if len(resp.Msg.Transactions) != 2 {
		t.Fatalf("rows: expected 2, got %d", len(resp.Msg.Transactions))
	}

	edited, err := c.finance.EditPersonalEntry(ctx, connect.NewRequest(&clubapi.EditPersonalEntryRequest{
		ID:     resp.Msg.Transactions[0].ID,
		Amount: dec("150"),
		Date:   testDay,
	}))
	if err != nil {
		t.Fatalf("EditPersonalEntry failed: %v", err)
	}
	if !edited.Msg.Transaction.Amount.Equal(dec("150")) {
		t.Errorf("amount: expected 150, got %s", edited.Msg.Transaction.Amount)
	}

	p, err := c.players.GetPlayer(ctx, connect.NewRequest(&clubapi.GetPlayerRequest{PlayerID: resp.Msg.Transactions[0].PlayerID}))
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if !p.Msg.Player.PersonalBalance.Equal(dec("150")) {
		t.Errorf("balance: expected 150, got %s", p.Msg.Player.PersonalBalance)
	}

	rows, err := c.finance.ListPersonal(ctx, connect.NewRequest(&clubapi.ListPersonalRequest{PlayerID: ids[1]}))
	if err != nil {
		t.Fatalf("ListPersonal failed: %v", err)
	}
	if len(rows.Msg.Transactions) != 1 {
		t.Errorf("rows for one player: expected 1, got %d", len(rows.Msg.Transactions))
	}

	_, err = c.finance.RecordPersonalBatch(ctx, connect.NewRequest(&clubapi.RecordPersonalBatchRequest{
		PlayerIDs: []string{ids[0], "ghost"},
		Amount:    dec("10"),
		Category:  "recharge",
		Date:      testDay,
	}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound for unknown player, got %v", err)
	}

	_, err = c.finance.RecordPersonalBatch(ctx, connect.NewRequest(&clubapi.RecordPersonalBatchRequest{
		PlayerIDs: ids,
		Amount:    dec("1e17"),
		Category:  "recharge",
		Date:      testDay,
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument for oversized amount, got %v", err)
	}
	_, err = c.finance.RecordTeamFundEntry(ctx, connect.NewRequest(&clubapi.RecordTeamFundEntryRequest{
		Amount:   dec("1e17"),
		Type:     "INCOME",
		Category: "sponsorship",
		Date:     testDay,
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument for oversized team fund amount, got %v", err)
	}
}

func TestAuthRequiredAndOperatorStamped(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	c := setupTestServer(t, jwt, map[string]string{"lee": hash})
	ctx := context.Background()

	_, err = c.finance.GetSummary(ctx, connect.NewRequest(&clubapi.GetSummaryRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated without a token, got %v", err)
	}

	_, err = c.auth.Login(ctx, connect.NewRequest(&clubapi.LoginRequest{Operator: "lee", Password: "wrong-password"}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated for a bad password, got %v", err)
	}

	login, err := c.auth.Login(ctx, connect.NewRequest(&clubapi.LoginRequest{Operator: "lee", Password: "correct-horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.Token == "" || login.Msg.ExpiresAt <= time.Now().Unix() {
		t.Fatalf("unexpected login response: %+v", login.Msg)
	}

	req := connect.NewRequest(&clubapi.RecordTeamFundEntryRequest{
		Amount:   dec("500"),
		Type:     "INCOME",
		Category: "sponsorship",
		Date:     testDay,
	})
	req.Header().Set("Authorization", "Bearer "+login.Msg.Token)
	resp, err := c.finance.RecordTeamFundEntry(ctx, req)
	if err != nil {
		t.Fatalf("RecordTeamFundEntry failed: %v", err)
	}
	if resp.Msg.Transaction.HandlerName != "lee" {
		t.Errorf("handler: expected 'lee', got '%s'", resp.Msg.Transaction.HandlerName)
	}
}
