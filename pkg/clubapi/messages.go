package clubapi

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Amounts are decimal strings ("12.50"); dates are "YYYY-MM-DD".

type Player struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	JerseyNumber    string          `json:"jersey_number,omitempty"`
	PersonalBalance decimal.Decimal `json:"personal_balance"`
	IsMember        bool            `json:"is_member"`
	CreatedAt       int64           `json:"created_at"`
}

type PersonalTransaction struct {
	ID             string          `json:"id"`
	PlayerID       string          `json:"player_id"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	Date           civil.Date      `json:"date"`
	DiningRecordID string          `json:"dining_record_id,omitempty"`
	CreatedAt      int64           `json:"created_at"`
}

// TeamFundTransaction carries at most one of DiningRecordID and SourceMatchID.
type TeamFundTransaction struct {
	ID             string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	HandlerName    string          `json:"handler_name,omitempty"`
	Date           civil.Date      `json:"date"`
	DiningRecordID string          `json:"dining_record_id,omitempty"`
	SourceMatchID  string          `json:"source_match_id,omitempty"`
	CreatedAt      int64           `json:"created_at"`
}

type MemberFundTransaction struct {
	ID              string           `json:"id"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	PerPersonAmount *decimal.Decimal `json:"per_person_amount,omitempty"`
	Type            string           `json:"type"`
	Description     string           `json:"description,omitempty"`
	Date            civil.Date       `json:"date"`
	MatchID         string           `json:"match_id,omitempty"`
	PayerIDs        []string         `json:"payer_ids,omitempty"`
	CreatedAt       int64            `json:"created_at"`
}

type DiningRecord struct {
	ID               string          `json:"id"`
	Date             civil.Date      `json:"date"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ParticipantCount int             `json:"participant_count"`
	PerPersonAmount  decimal.Decimal `json:"per_person_amount"`
	SubsidyAmount    decimal.Decimal `json:"subsidy_amount"`
	Cap              decimal.Decimal `json:"cap"`
	HandlerName      string          `json:"handler_name,omitempty"`
	RestaurantName   string          `json:"restaurant_name,omitempty"`
	CreatedAt        int64           `json:"created_at"`
}

type Attendance struct {
	PlayerID string          `json:"player_id"`
	Goals    int             `json:"goals"`
	Assists  int             `json:"assists"`
	Fee      decimal.Decimal `json:"fee"`
}

type Match struct {
	ID          string          `json:"id,omitempty"`
	Date        civil.Date      `json:"date"`
	Opponent    string          `json:"opponent"`
	Type        string          `json:"type"`
	LeagueName  string          `json:"league_name,omitempty"`
	OurScore    *int            `json:"our_score,omitempty"`
	TheirScore  *int            `json:"their_score,omitempty"`
	Result      string          `json:"result,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	Attendances []Attendance    `json:"attendances"`
	CreatedAt   int64           `json:"created_at,omitempty"`
}

// PlayerService

type CreatePlayerRequest struct {
	Name         string `json:"name"`
	JerseyNumber string `json:"jersey_number,omitempty"`
}

type CreatePlayerResponse struct {
	Player *Player `json:"player"`
}

type GetPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type GetPlayerResponse struct {
	Player *Player `json:"player"`
}

type ListPlayersRequest struct{}

type ListPlayersResponse struct {
	Players []*Player `json:"players"`
}

type SetMembershipRequest struct {
	PlayerIDs []string `json:"player_ids"`
	IsMember  bool     `json:"is_member"`
}

type SetMembershipResponse struct{}

type UpdatePlayerRequest struct {
	PlayerID     string `json:"player_id"`
	Name         string `json:"name"`
	JerseyNumber string `json:"jersey_number,omitempty"`
}

type UpdatePlayerResponse struct {
	Player *Player `json:"player"`
}

type DeletePlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type DeletePlayerResponse struct{}

// FinanceService: team fund

type RecordTeamFundEntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        civil.Date      `json:"date"`
	HandlerName string          `json:"handler_name,omitempty"`
	Description string          `json:"description,omitempty"`
}

type RecordTeamFundEntryResponse struct {
	Transaction *TeamFundTransaction `json:"transaction"`
}

type UpdateTeamFundEntryRequest struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        civil.Date      `json:"date"`
	HandlerName string          `json:"handler_name,omitempty"`
	Description string          `json:"description,omitempty"`
}

type UpdateTeamFundEntryResponse struct {
	Transaction *TeamFundTransaction `json:"transaction"`
}

type DeleteTeamFundEntryRequest struct {
	ID string `json:"id"`
}

type DeleteTeamFundEntryResponse struct{}

type ListTeamFundRequest struct {
	// Month is "YYYY-MM"; empty lists every row.
	Month string `json:"month,omitempty"`
}

// ListTeamFundResponse.Balance is the net of the returned rows.
type ListTeamFundResponse struct {
	Transactions []*TeamFundTransaction `json:"transactions"`
	Balance      decimal.Decimal        `json:"balance"`
}

type ListTeamFundCategoriesRequest struct {
	Type string `json:"type"`
}

type ListTeamFundCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// FinanceService: personal accounts

type RecordPersonalBatchRequest struct {
	PlayerIDs   []string        `json:"player_ids"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        civil.Date      `json:"date"`
	Description string          `json:"description,omitempty"`
}

type RecordPersonalBatchResponse struct {
	Transactions []*PersonalTransaction `json:"transactions"`
}

type EditPersonalEntryRequest struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        civil.Date      `json:"date"`
	Description string          `json:"description,omitempty"`
}

type EditPersonalEntryResponse struct {
	Transaction *PersonalTransaction `json:"transaction"`
}

type DeletePersonalEntryRequest struct {
	ID string `json:"id"`
}

type DeletePersonalEntryResponse struct{}

type ListPersonalRequest struct {
	PlayerID string `json:"player_id,omitempty"`
}

type ListPersonalResponse struct {
	Transactions []*PersonalTransaction `json:"transactions"`
}

// FinanceService: dining

type SettleDiningRequest struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ParticipantIDs []string        `json:"participant_ids"`
	// Cap overrides the configured per-person limit when set.
	Cap            *decimal.Decimal `json:"cap,omitempty"`
	Date           civil.Date       `json:"date"`
	HandlerName    string           `json:"handler_name,omitempty"`
	RestaurantName string           `json:"restaurant_name,omitempty"`
}

type SettleDiningResponse struct {
	Record    *DiningRecord          `json:"record"`
	PerPerson decimal.Decimal        `json:"per_person"`
	Subsidy   decimal.Decimal        `json:"subsidy"`
	Shares    []*PersonalTransaction `json:"shares"`
}

// EditDiningMetadataRequest leaves nil fields unchanged. TotalAmount and
// ParticipantCount are accepted only if they match the stored record.
type EditDiningMetadataRequest struct {
	ID               string           `json:"id"`
	Date             *civil.Date      `json:"date,omitempty"`
	HandlerName      *string          `json:"handler_name,omitempty"`
	RestaurantName   *string          `json:"restaurant_name,omitempty"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
	ParticipantCount *int             `json:"participant_count,omitempty"`
}

type EditDiningMetadataResponse struct {
	Record *DiningRecord `json:"record"`
}

type DeleteDiningRequest struct {
	ID string `json:"id"`
}

type DeleteDiningResponse struct{}

type GetDiningRequest struct {
	ID string `json:"id"`
}

type GetDiningResponse struct {
	Record *DiningRecord `json:"record"`
}

type ListDiningRequest struct{}

type ListDiningResponse struct {
	Records []*DiningRecord `json:"records"`
}

// FinanceService: member fund

type CollectDuesRequest struct {
	PerPersonAmount decimal.Decimal `json:"per_person_amount"`
	PayerIDs        []string        `json:"payer_ids"`
	Date            civil.Date      `json:"date"`
	Description     string          `json:"description,omitempty"`
}

type CollectDuesResponse struct {
	Transaction *MemberFundTransaction `json:"transaction"`
}

type RecordMemberFundExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        civil.Date      `json:"date"`
	Description string          `json:"description,omitempty"`
}

type RecordMemberFundExpenseResponse struct {
	Transaction *MemberFundTransaction `json:"transaction"`
}

type DeleteDuesEntryRequest struct {
	ID string `json:"id"`
}

type DeleteDuesEntryResponse struct{}

type ListMemberFundRequest struct{}

type ListMemberFundResponse struct {
	Transactions []*MemberFundTransaction `json:"transactions"`
	Balance      decimal.Decimal          `json:"balance"`
}

// FinanceService: reporting

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	TeamFundBalance   decimal.Decimal `json:"team_fund_balance"`
	MemberFundBalance decimal.Decimal `json:"member_fund_balance"`
	PersonalTotal     decimal.Decimal `json:"personal_total"`
	PlayerCount       int             `json:"player_count"`
	MemberCount       int             `json:"member_count"`
}

type AuditBalancesRequest struct{}

type BalanceDrift struct {
	PlayerID string          `json:"player_id"`
	Stored   decimal.Decimal `json:"stored"`
	Computed decimal.Decimal `json:"computed"`
}

type AuditBalancesResponse struct {
	Drift []*BalanceDrift `json:"drift"`
}

// MatchService

type SaveMatchRequest struct {
	Match *Match `json:"match"`
}

type SaveMatchResponse struct {
	Match              *Match                 `json:"match"`
	Retracted          int64                  `json:"retracted"`
	Diff               decimal.Decimal        `json:"diff"`
	Posted             *MemberFundTransaction `json:"posted,omitempty"`
	Bailout            decimal.Decimal        `json:"bailout"`
	RevokedMemberships int64                  `json:"revoked_memberships"`
}

type GetMatchRequest struct {
	ID string `json:"id"`
}

type GetMatchResponse struct {
	Match *Match `json:"match"`
}

type DeleteMatchRequest struct {
	ID string `json:"id"`
}

type DeleteMatchResponse struct{}

type ListMatchesRequest struct{}

type ListMatchesResponse struct {
	Matches []*Match `json:"matches"`
}

type ListLeagueNamesRequest struct{}

type ListLeagueNamesResponse struct {
	LeagueNames []string `json:"league_names"`
}

// AuthService

type LoginRequest struct {
	Operator string `json:"operator"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
