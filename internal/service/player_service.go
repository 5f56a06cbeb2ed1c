package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/alumnifc/clubledger/internal/finance"
	"github.com/alumnifc/clubledger/pkg/clubapi"
)

// PlayerService implements the Connect PlayerService.
type PlayerService struct {
	engine *finance.Engine
}

var _ clubapi.PlayerServiceHandler = (*PlayerService)(nil)

// NewPlayerService creates a PlayerService backed by engine.
func NewPlayerService(engine *finance.Engine) *PlayerService {
	return &PlayerService{engine: engine}
}

// CreatePlayer adds a player to the roster with a zero balance.
func (s *PlayerService) CreatePlayer(ctx context.Context, req *connect.Request[clubapi.CreatePlayerRequest]) (*connect.Response[clubapi.CreatePlayerResponse], error) {
	p, err := s.engine.CreatePlayer(ctx, req.Msg.Name, req.Msg.JerseyNumber)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.CreatePlayerResponse{Player: toAPIPlayer(p)}), nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, req *connect.Request[clubapi.GetPlayerRequest]) (*connect.Response[clubapi.GetPlayerResponse], error) {
	p, err := s.engine.GetPlayer(ctx, req.Msg.PlayerID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.GetPlayerResponse{Player: toAPIPlayer(p)}), nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, _ *connect.Request[clubapi.ListPlayersRequest]) (*connect.Response[clubapi.ListPlayersResponse], error) {
	players, err := s.engine.ListPlayers(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	out := make([]*clubapi.Player, len(players))
	for i, p := range players {
		out[i] = toAPIPlayer(p)
	}
	return connect.NewResponse(&clubapi.ListPlayersResponse{Players: out}), nil
}

// SetMembership grants or revokes membership for every listed player.
func (s *PlayerService) SetMembership(ctx context.Context, req *connect.Request[clubapi.SetMembershipRequest]) (*connect.Response[clubapi.SetMembershipResponse], error) {
	if err := s.engine.SetMembership(ctx, req.Msg.PlayerIDs, req.Msg.IsMember); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.SetMembershipResponse{}), nil
}

// UpdatePlayer changes a player's name and jersey number.
func (s *PlayerService) UpdatePlayer(ctx context.Context, req *connect.Request[clubapi.UpdatePlayerRequest]) (*connect.Response[clubapi.UpdatePlayerResponse], error) {
	p, err := s.engine.UpdatePlayer(ctx, req.Msg.PlayerID, req.Msg.Name, req.Msg.JerseyNumber)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.UpdatePlayerResponse{Player: toAPIPlayer(p)}), nil
}

// DeletePlayer removes a player with no ledger history. Players with
// history fail with FailedPrecondition.
func (s *PlayerService) DeletePlayer(ctx context.Context, req *connect.Request[clubapi.DeletePlayerRequest]) (*connect.Response[clubapi.DeletePlayerResponse], error) {
	if err := s.engine.DeletePlayer(ctx, req.Msg.PlayerID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&clubapi.DeletePlayerResponse{}), nil
}
