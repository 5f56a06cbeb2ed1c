package clubapi

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// MatchServiceName is the fully-qualified name of the MatchService service.
const MatchServiceName = "clubledger.v1.MatchService"

const (
	MatchServiceSaveMatchProcedure       = "/clubledger.v1.MatchService/SaveMatch"
	MatchServiceGetMatchProcedure        = "/clubledger.v1.MatchService/GetMatch"
	MatchServiceDeleteMatchProcedure     = "/clubledger.v1.MatchService/DeleteMatch"
	MatchServiceListMatchesProcedure     = "/clubledger.v1.MatchService/ListMatches"
	MatchServiceListLeagueNamesProcedure = "/clubledger.v1.MatchService/ListLeagueNames"
)

// MatchServiceClient is a client for matches and friendly reconciliation.
type MatchServiceClient interface {
	SaveMatch(context.Context, *connect.Request[SaveMatchRequest]) (*connect.Response[SaveMatchResponse], error)
	GetMatch(context.Context, *connect.Request[GetMatchRequest]) (*connect.Response[GetMatchResponse], error)
	DeleteMatch(context.Context, *connect.Request[DeleteMatchRequest]) (*connect.Response[DeleteMatchResponse], error)
	ListMatches(context.Context, *connect.Request[ListMatchesRequest]) (*connect.Response[ListMatchesResponse], error)
	ListLeagueNames(context.Context, *connect.Request[ListLeagueNamesRequest]) (*connect.Response[ListLeagueNamesResponse], error)
}

// NewMatchServiceClient constructs a client for the MatchService.
func NewMatchServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MatchServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = ClientOptions(opts...)
	return &matchServiceClient{
		saveMatch:       connect.NewClient[SaveMatchRequest, SaveMatchResponse](httpClient, baseURL+MatchServiceSaveMatchProcedure, opts...),
		getMatch:        connect.NewClient[GetMatchRequest, GetMatchResponse](httpClient, baseURL+MatchServiceGetMatchProcedure, opts...),
		deleteMatch:     connect.NewClient[DeleteMatchRequest, DeleteMatchResponse](httpClient, baseURL+MatchServiceDeleteMatchProcedure, opts...),
		listMatches:     connect.NewClient[ListMatchesRequest, ListMatchesResponse](httpClient, baseURL+MatchServiceListMatchesProcedure, opts...),
		listLeagueNames: connect.NewClient[ListLeagueNamesRequest, ListLeagueNamesResponse](httpClient, baseURL+MatchServiceListLeagueNamesProcedure, opts...),
	}
}

type matchServiceClient struct {
	saveMatch       *connect.Client[SaveMatchRequest, SaveMatchResponse]
	getMatch        *connect.Client[GetMatchRequest, GetMatchResponse]
	deleteMatch     *connect.Client[DeleteMatchRequest, DeleteMatchResponse]
	listMatches     *connect.Client[ListMatchesRequest, ListMatchesResponse]
	listLeagueNames *connect.Client[ListLeagueNamesRequest, ListLeagueNamesResponse]
}

func (c *matchServiceClient) SaveMatch(ctx context.Context, req *connect.Request[SaveMatchRequest]) (*connect.Response[SaveMatchResponse], error) {
	return c.saveMatch.CallUnary(ctx, req)
}

func (c *matchServiceClient) GetMatch(ctx context.Context, req *connect.Request[GetMatchRequest]) (*connect.Response[GetMatchResponse], error) {
	return c.getMatch.CallUnary(ctx, req)
}

func (c *matchServiceClient) DeleteMatch(ctx context.Context, req *connect.Request[DeleteMatchRequest]) (*connect.Response[DeleteMatchResponse], error) {
	return c.deleteMatch.CallUnary(ctx, req)
}

func (c *matchServiceClient) ListMatches(ctx context.Context, req *connect.Request[ListMatchesRequest]) (*connect.Response[ListMatchesResponse], error) {
	return c.listMatches.CallUnary(ctx, req)
}

func (c *matchServiceClient) ListLeagueNames(ctx context.Context, req *connect.Request[ListLeagueNamesRequest]) (*connect.Response[ListLeagueNamesResponse], error) {
	return c.listLeagueNames.CallUnary(ctx, req)
}

// MatchServiceHandler is implemented by the server.
type MatchServiceHandler interface {
	SaveMatch(context.Context, *connect.Request[SaveMatchRequest]) (*connect.Response[SaveMatchResponse], error)
	GetMatch(context.Context, *connect.Request[GetMatchRequest]) (*connect.Response[GetMatchResponse], error)
	DeleteMatch(context.Context, *connect.Request[DeleteMatchRequest]) (*connect.Response[DeleteMatchResponse], error)
	ListMatches(context.Context, *connect.Request[ListMatchesRequest]) (*connect.Response[ListMatchesResponse], error)
	ListLeagueNames(context.Context, *connect.Request[ListLeagueNamesRequest]) (*connect.Response[ListLeagueNamesResponse], error)
}

// NewMatchServiceHandler returns the path to mount the service on and its
// handler.
func NewMatchServiceHandler(svc MatchServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(MatchServiceSaveMatchProcedure, connect.NewUnaryHandler(MatchServiceSaveMatchProcedure, svc.SaveMatch, opts...))
	mux.Handle(MatchServiceGetMatchProcedure, connect.NewUnaryHandler(MatchServiceGetMatchProcedure, svc.GetMatch, opts...))
	mux.Handle(MatchServiceDeleteMatchProcedure, connect.NewUnaryHandler(MatchServiceDeleteMatchProcedure, svc.DeleteMatch, opts...))
	mux.Handle(MatchServiceListMatchesProcedure, connect.NewUnaryHandler(MatchServiceListMatchesProcedure, svc.ListMatches, opts...))
	mux.Handle(MatchServiceListLeagueNamesProcedure, connect.NewUnaryHandler(MatchServiceListLeagueNamesProcedure, svc.ListLeagueNames, opts...))
	return "/" + MatchServiceName + "/", mux
}
