package clubapi

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// PlayerServiceName is the fully-qualified name of the PlayerService service.
const PlayerServiceName = "clubledger.v1.PlayerService"

const (
	PlayerServiceCreatePlayerProcedure  = "/clubledger.v1.PlayerService/CreatePlayer"
	PlayerServiceGetPlayerProcedure     = "/clubledger.v1.PlayerService/GetPlayer"
	PlayerServiceListPlayersProcedure   = "/clubledger.v1.PlayerService/ListPlayers"
	PlayerServiceSetMembershipProcedure = "/clubledger.v1.PlayerService/SetMembership"
	PlayerServiceUpdatePlayerProcedure  = "/clubledger.v1.PlayerService/UpdatePlayer"
	PlayerServiceDeletePlayerProcedure  = "/clubledger.v1.PlayerService/DeletePlayer"
)

// PlayerServiceClient is a client for the roster.
type PlayerServiceClient interface {
	CreatePlayer(context.Context, *connect.Request[CreatePlayerRequest]) (*connect.Response[CreatePlayerResponse], error)
	GetPlayer(context.Context, *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error)
	ListPlayers(context.Context, *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error)
	SetMembership(context.Context, *connect.Request[SetMembershipRequest]) (*connect.Response[SetMembershipResponse], error)
	UpdatePlayer(context.Context, *connect.Request[UpdatePlayerRequest]) (*connect.Response[UpdatePlayerResponse], error)
	DeletePlayer(context.Context, *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error)
}

// NewPlayerServiceClient constructs a client for the PlayerService. baseURL
// is the server root, e.g. http://localhost:8080.
func NewPlayerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PlayerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = ClientOptions(opts...)
	return &playerServiceClient{
		createPlayer:  connect.NewClient[CreatePlayerRequest, CreatePlayerResponse](httpClient, baseURL+PlayerServiceCreatePlayerProcedure, opts...),
		getPlayer:     connect.NewClient[GetPlayerRequest, GetPlayerResponse](httpClient, baseURL+PlayerServiceGetPlayerProcedure, opts...),
		listPlayers:   connect.NewClient[ListPlayersRequest, ListPlayersResponse](httpClient, baseURL+PlayerServiceListPlayersProcedure, opts...),
		setMembership: connect.NewClient[SetMembershipRequest, SetMembershipResponse](httpClient, baseURL+PlayerServiceSetMembershipProcedure, opts...),
		updatePlayer:  connect.NewClient[UpdatePlayerRequest, UpdatePlayerResponse](httpClient, baseURL+PlayerServiceUpdatePlayerProcedure, opts...),
		deletePlayer:  connect.NewClient[DeletePlayerRequest, DeletePlayerResponse](httpClient, baseURL+PlayerServiceDeletePlayerProcedure, opts...),
	}
}

type playerServiceClient struct {
	createPlayer  *connect.Client[CreatePlayerRequest, CreatePlayerResponse]
	getPlayer     *connect.Client[GetPlayerRequest, GetPlayerResponse]
	listPlayers   *connect.Client[ListPlayersRequest, ListPlayersResponse]
	setMembership *connect.Client[SetMembershipRequest, SetMembershipResponse]
	updatePlayer  *connect.Client[UpdatePlayerRequest, UpdatePlayerResponse]
	deletePlayer  *connect.Client[DeletePlayerRequest, DeletePlayerResponse]
}

func (c *playerServiceClient) CreatePlayer(ctx context.Context, req *connect.Request[CreatePlayerRequest]) (*connect.Response[CreatePlayerResponse], error) {
	return c.createPlayer.CallUnary(ctx, req)
}

func (c *playerServiceClient) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error) {
	return c.getPlayer.CallUnary(ctx, req)
}

func (c *playerServiceClient) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	return c.listPlayers.CallUnary(ctx, req)
}

func (c *playerServiceClient) SetMembership(ctx context.Context, req *connect.Request[SetMembershipRequest]) (*connect.Response[SetMembershipResponse], error) {
	return c.setMembership.CallUnary(ctx, req)
}

func (c *playerServiceClient) UpdatePlayer(ctx context.Context, req *connect.Request[UpdatePlayerRequest]) (*connect.Response[UpdatePlayerResponse], error) {
	return c.updatePlayer.CallUnary(ctx, req)
}

func (c *playerServiceClient) DeletePlayer(ctx context.Context, req *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error) {
	return c.deletePlayer.CallUnary(ctx, req)
}

// PlayerServiceHandler is implemented by the server.
type PlayerServiceHandler interface {
	CreatePlayer(context.Context, *connect.Request[CreatePlayerRequest]) (*connect.Response[CreatePlayerResponse], error)
	GetPlayer(context.Context, *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error)
	ListPlayers(context.Context, *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error)
	SetMembership(context.Context, *connect.Request[SetMembershipRequest]) (*connect.Response[SetMembershipResponse], error)
	UpdatePlayer(context.Context, *connect.Request[UpdatePlayerRequest]) (*connect.Response[UpdatePlayerResponse], error)
	DeletePlayer(context.Context, *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error)
}

// NewPlayerServiceHandler returns the path to mount the service on and its
// handler.
func NewPlayerServiceHandler(svc PlayerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(PlayerServiceCreatePlayerProcedure, connect.NewUnaryHandler(PlayerServiceCreatePlayerProcedure, svc.CreatePlayer, opts...))
	mux.Handle(PlayerServiceGetPlayerProcedure, connect.NewUnaryHandler(PlayerServiceGetPlayerProcedure, svc.GetPlayer, opts...))
	mux.Handle(PlayerServiceListPlayersProcedure, connect.NewUnaryHandler(PlayerServiceListPlayersProcedure, svc.ListPlayers, opts...))
	mux.Handle(PlayerServiceSetMembershipProcedure, connect.NewUnaryHandler(PlayerServiceSetMembershipProcedure, svc.SetMembership, opts...))
	mux.Handle(PlayerServiceUpdatePlayerProcedure, connect.NewUnaryHandler(PlayerServiceUpdatePlayerProcedure, svc.UpdatePlayer, opts...))
	mux.Handle(PlayerServiceDeletePlayerProcedure, connect.NewUnaryHandler(PlayerServiceDeletePlayerProcedure, svc.DeletePlayer, opts...))
	return "/" + PlayerServiceName + "/", mux
}
