package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/alumnifc/clubledger/internal/finance"
	"github.com/alumnifc/clubledger/pkg/clubapi"
)

// MatchService implements the Connect MatchService.
type MatchService struct {
	engine *finance.Engine
}

var _ clubapi.MatchServiceHandler = (*MatchService)(nil)

// NewMatchService creates a MatchService backed by engine.
func NewMatchService(engine *finance.Engine) *MatchService {
	return &MatchService{engine: engine}
}

// SaveMatch creates or replaces a match. Friendlies are reconciled against
// the member fund on every save.
func (s *MatchService) SaveMatch(ctx context.Context, req *connect.Request[clubapi.SaveMatchRequest]) (*connect.Response[clubapi.SaveMatchResponse], error) {
	if req.Msg.Match == nil {
		return nil, connectError(finance.ErrInvalidInput)
	}
	m := fromAPIMatch(req.Msg.Match)
	rec, err := s.engine.SaveMatch(ctx, m)
	if err != nil {
		return nil, connectError(err)
	}

	resp := &clubapi.SaveMatchResponse{
		Match:              toAPIMatch(m),
		Retracted:          rec.Retracted,
		Diff:               rec.Diff,
		Bailout:            rec.Bailout,
		RevokedMemberships: rec.RevokedMemberships,
	}
	if rec.Posted != nil {
		resp.Posted = toAPIMemberFund(rec.Posted)
	}
	return connect.NewResponse(resp), nil
}

func (s *MatchService) GetMatch(ctx context.Context, req *connect.Request[clubapi.GetMatchRequest]) (*connect.Response[clubapi.GetMatchResponse], error) {
	m, err := s.engine.GetMatch(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.GetMatchResponse{Match: toAPIMatch(m)}), nil
}

// DeleteMatch removes a match together with the ledger rows it generated.
func (s *MatchService) DeleteMatch(ctx context.Context, req *connect.Request[clubapi.DeleteMatchRequest]) (*connect.Response[clubapi.DeleteMatchResponse], error) {
	if err := s.engine.DeleteMatch(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.DeleteMatchResponse{}), nil
}

func (s *MatchService) ListMatches(ctx context.Context, _ *connect.Request[clubapi.ListMatchesRequest]) (*connect.Response[clubapi.ListMatchesResponse], error) {
	matches, err := s.engine.ListMatches(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	out := make([]*clubapi.Match, len(matches))
	for i, m := range matches {
		out[i] = toAPIMatch(m)
	}
	return connect.NewResponse(&clubapi.ListMatchesResponse{Matches: out}), nil
}

func (s *MatchService) ListLeagueNames(ctx context.Context, _ *connect.Request[clubapi.ListLeagueNamesRequest]) (*connect.Response[clubapi.ListLeagueNamesResponse], error) {
	names, err := s.engine.LeagueNames(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.ListLeagueNamesResponse{LeagueNames: names}), nil
}
