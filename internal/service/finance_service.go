package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/alumnifc/clubledger/internal/calculator"
	"github.com/alumnifc/clubledger/internal/finance"
	"github.com/alumnifc/clubledger/internal/middleware"
	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/pkg/clubapi"
)

// FinanceService implements the Connect FinanceService over the three
// ledgers.
type FinanceService struct {
	engine *finance.Engine
}

var _ clubapi.FinanceServiceHandler = (*FinanceService)(nil)

// NewFinanceService creates a FinanceService backed by engine.
func NewFinanceService(engine *finance.Engine) *FinanceService {
	return &FinanceService{engine: engine}
}

// handlerName falls back to the authenticated operator.
func handlerName(ctx context.Context, given string) string {
	if given != "" {
		return given
	}
	return middleware.GetOperator(ctx)
}

// Team fund

func (s *FinanceService) RecordTeamFundEntry(ctx context.Context, req *connect.Request[clubapi.RecordTeamFundEntryRequest]) (*connect.Response[clubapi.RecordTeamFundEntryResponse], error) {
	t, err := s.engine.RecordTeamFundEntry(ctx, finance.TeamFundEntry{
		Amount:      req.Msg.Amount,
		Type:        models.TransactionType(req.Msg.Type),
		Category:    req.Msg.Category,
		Date:        req.Msg.Date,
		HandlerName: handlerName(ctx, req.Msg.HandlerName),
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.RecordTeamFundEntryResponse{Transaction: toAPITeamFund(t)}), nil
}

func (s *FinanceService) UpdateTeamFundEntry(ctx context.Context, req *connect.Request[clubapi.UpdateTeamFundEntryRequest]) (*connect.Response[clubapi.UpdateTeamFundEntryResponse], error) {
	t, err := s.engine.UpdateTeamFundEntry(ctx, req.Msg.ID, finance.TeamFundEntry{
		Amount:      req.Msg.Amount,
		Type:        models.TransactionType(req.Msg.Type),
		Category:    req.Msg.Category,
		Date:        req.Msg.Date,
		HandlerName: handlerName(ctx, req.Msg.HandlerName),
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.UpdateTeamFundEntryResponse{Transaction: toAPITeamFund(t)}), nil
}

func (s *FinanceService) DeleteTeamFundEntry(ctx context.Context, req *connect.Request[clubapi.DeleteTeamFundEntryRequest]) (*connect.Response[clubapi.DeleteTeamFundEntryResponse], error) {
	if err := s.engine.DeleteTeamFundEntry(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.DeleteTeamFundEntryResponse{}), nil
}

// ListTeamFund returns the rows of one month, or all of them. Balance is
// the net of the returned rows.
func (s *FinanceService) ListTeamFund(ctx context.Context, req *connect.Request[clubapi.ListTeamFundRequest]) (*connect.Response[clubapi.ListTeamFundResponse], error) {
	rows, err := s.engine.ListTeamFund(ctx, req.Msg.Month)
	if err != nil {
		return nil, connectError(err)
	}
	out := make([]*clubapi.TeamFundTransaction, len(rows))
	for i, r := range rows {
		out[i] = toAPITeamFund(r)
	}
	return connect.NewResponse(&clubapi.ListTeamFundResponse{
		Transactions: out,
		Balance:      calculator.TeamFundBalance(rows),
	}), nil
}

func (s *FinanceService) ListTeamFundCategories(ctx context.Context, req *connect.Request[clubapi.ListTeamFundCategoriesRequest]) (*connect.Response[clubapi.ListTeamFundCategoriesResponse], error) {
	cats, err := s.engine.TeamFundCategories(ctx, models.TransactionType(req.Msg.Type))
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.ListTeamFundCategoriesResponse{Categories: cats}), nil
}

// Personal accounts

func (s *FinanceService) RecordPersonalBatch(ctx context.Context, req *connect.Request[clubapi.RecordPersonalBatchRequest]) (*connect.Response[clubapi.RecordPersonalBatchResponse], error) {
	rows, err := s.engine.RecordPersonalBatch(ctx, finance.PersonalBatch{
		PlayerIDs:   req.Msg.PlayerIDs,
		Amount:      req.Msg.Amount,
		Category:    req.Msg.Category,
		Date:        req.Msg.Date,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.RecordPersonalBatchResponse{Transactions: toAPIPersonals(rows)}), nil
}

func (s *FinanceService) EditPersonalEntry(ctx context.Context, req *connect.Request[clubapi.EditPersonalEntryRequest]) (*connect.Response[clubapi.EditPersonalEntryResponse], error) {
	t, err := s.engine.EditPersonalEntry(ctx, req.Msg.ID, finance.PersonalEdit{
		Amount:      req.Msg.Amount,
		Date:        req.Msg.Date,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.EditPersonalEntryResponse{Transaction: toAPIPersonal(t)}), nil
}

func (s *FinanceService) DeletePersonalEntry(ctx context.Context, req *connect.Request[clubapi.DeletePersonalEntryRequest]) (*connect.Response[clubapi.DeletePersonalEntryResponse], error) {
	if err := s.engine.DeletePersonalEntry(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.DeletePersonalEntryResponse{}), nil
}

func (s *FinanceService) ListPersonal(ctx context.Context, req *connect.Request[clubapi.ListPersonalRequest]) (*connect.Response[clubapi.ListPersonalResponse], error) {
	rows, err := s.engine.ListPersonal(ctx, req.Msg.PlayerID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.ListPersonalResponse{Transactions: toAPIPersonals(rows)}), nil
}

// Dining

// SettleDining splits a bill among the participants under the per-person cap.
func (s *FinanceService) SettleDining(ctx context.Context, req *connect.Request[clubapi.SettleDiningRequest]) (*connect.Response[clubapi.SettleDiningResponse], error) {
	res, err := s.engine.SettleDining(ctx, finance.DiningBill{
		TotalAmount:    req.Msg.TotalAmount,
		ParticipantIDs: req.Msg.ParticipantIDs,
		Cap:            optionalCap(req.Msg.Cap),
		Date:           req.Msg.Date,
		HandlerName:    handlerName(ctx, req.Msg.HandlerName),
		RestaurantName: req.Msg.RestaurantName,
	})
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&clubapi.SettleDiningResponse{
		Record:    toAPIDining(res.Record),
		PerPerson: res.Split.PerPerson,
		Subsidy:   res.Split.Subsidy,
		Shares:    toAPIPersonals(res.Shares),
	}), nil
}

func (s *FinanceService) EditDiningMetadata(ctx context.Context, req *connect.Request[clubapi.EditDiningMetadataRequest]) (*connect.Response[clubapi.EditDiningMetadataResponse], error) {
	r, err := s.engine.EditDiningMetadata(ctx, req.Msg.ID, finance.DiningEdit{
		Date:             req.Msg.Date,
		HandlerName:      req.Msg.HandlerName,
		RestaurantName:   req.Msg.RestaurantName,
		TotalAmount:      req.Msg.TotalAmount,
		ParticipantCount: req.Msg.ParticipantCount,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.EditDiningMetadataResponse{Record: toAPIDining(r)}), nil
}

// DeleteDining refunds every share and removes the subsidy.
func (s *FinanceService) DeleteDining(ctx context.Context, req *connect.Request[clubapi.DeleteDiningRequest]) (*connect.Response[clubapi.DeleteDiningResponse], error) {
	if err := s.engine.DeleteDining(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.DeleteDiningResponse{}), nil
}

func (s *FinanceService) GetDining(ctx context.Context, req *connect.Request[clubapi.GetDiningRequest]) (*connect.Response[clubapi.GetDiningResponse], error) {
	r, err := s.engine.GetDining(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.GetDiningResponse{Record: toAPIDining(r)}), nil
}

func (s *FinanceService) ListDining(ctx context.Context, _ *connect.Request[clubapi.ListDiningRequest]) (*connect.Response[clubapi.ListDiningResponse], error) {
	records, err := s.engine.ListDining(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	out := make([]*clubapi.DiningRecord, len(records))
	for i, r := range records {
		out[i] = toAPIDining(r)
	}
	return connect.NewResponse(&clubapi.ListDiningResponse{Records: out}), nil
}

// Member fund

func (s *FinanceService) CollectDues(ctx context.Context, req *connect.Request[clubapi.CollectDuesRequest]) (*connect.Response[clubapi.CollectDuesResponse], error) {
	t, err := s.engine.CollectDues(ctx, finance.Dues{
		PerPerson:   req.Msg.PerPersonAmount,
		PayerIDs:    req.Msg.PayerIDs,
		Date:        req.Msg.Date,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.CollectDuesResponse{Transaction: toAPIMemberFund(t)}), nil
}

func (s *FinanceService) RecordMemberFundExpense(ctx context.Context, req *connect.Request[clubapi.RecordMemberFundExpenseRequest]) (*connect.Response[clubapi.RecordMemberFundExpenseResponse], error) {
	t, err := s.engine.RecordMemberFundExpense(ctx, finance.MemberFundExpense{
		Amount:      req.Msg.Amount,
		Date:        req.Msg.Date,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.RecordMemberFundExpenseResponse{Transaction: toAPIMemberFund(t)}), nil
}

func (s *FinanceService) DeleteDuesEntry(ctx context.Context, req *connect.Request[clubapi.DeleteDuesEntryRequest]) (*connect.Response[clubapi.DeleteDuesEntryResponse], error) {
	if err := s.engine.DeleteDuesEntry(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.DeleteDuesEntryResponse{}), nil
}

func (s *FinanceService) ListMemberFund(ctx context.Context, _ *connect.Request[clubapi.ListMemberFundRequest]) (*connect.Response[clubapi.ListMemberFundResponse], error) {
	rows, err := s.engine.ListMemberFund(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	out := make([]*clubapi.MemberFundTransaction, len(rows))
	for i, r := range rows {
		out[i] = toAPIMemberFund(r)
	}
	return connect.NewResponse(&clubapi.ListMemberFundResponse{
		Transactions: out,
		Balance:      calculator.MemberFundBalance(rows),
	}), nil
}

// Reporting

func (s *FinanceService) GetSummary(ctx context.Context, _ *connect.Request[clubapi.GetSummaryRequest]) (*connect.Response[clubapi.GetSummaryResponse], error) {
	sum, err := s.engine.Summary(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.GetSummaryResponse{
		TeamFundBalance:   sum.TeamFund,
		MemberFundBalance: sum.MemberFund,
		PersonalTotal:     sum.PersonalTotal,
		PlayerCount:       sum.Players,
		MemberCount:       sum.Members,
	}), nil
}

func (s *FinanceService) AuditBalances(ctx context.Context, _ *connect.Request[clubapi.AuditBalancesRequest]) (*connect.Response[clubapi.AuditBalancesResponse], error) {
	drift, err := s.engine.AuditBalances(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.AuditBalancesResponse{Drift: toAPIDrift(drift)}), nil
}
