package clubapi

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// FinanceServiceName is the fully-qualified name of the FinanceService service.
const FinanceServiceName = "clubledger.v1.FinanceService"

const (
	FinanceServiceRecordTeamFundEntryProcedure     = "/clubledger.v1.FinanceService/RecordTeamFundEntry"
	FinanceServiceUpdateTeamFundEntryProcedure     = "/clubledger.v1.FinanceService/UpdateTeamFundEntry"
	FinanceServiceDeleteTeamFundEntryProcedure     = "/clubledger.v1.FinanceService/DeleteTeamFundEntry"
	FinanceServiceListTeamFundProcedure            = "/clubledger.v1.FinanceService/ListTeamFund"
	FinanceServiceListTeamFundCategoriesProcedure  = "/clubledger.v1.FinanceService/ListTeamFundCategories"
	FinanceServiceRecordPersonalBatchProcedure     = "/clubledger.v1.FinanceService/RecordPersonalBatch"
	FinanceServiceEditPersonalEntryProcedure       = "/clubledger.v1.FinanceService/EditPersonalEntry"
	FinanceServiceDeletePersonalEntryProcedure     = "/clubledger.v1.FinanceService/DeletePersonalEntry"
	FinanceServiceListPersonalProcedure            = "/clubledger.v1.FinanceService/ListPersonal"
	FinanceServiceSettleDiningProcedure            = "/clubledger.v1.FinanceService/SettleDining"
	FinanceServiceEditDiningMetadataProcedure      = "/clubledger.v1.FinanceService/EditDiningMetadata"
	FinanceServiceDeleteDiningProcedure            = "/clubledger.v1.FinanceService/DeleteDining"
	FinanceServiceGetDiningProcedure               = "/clubledger.v1.FinanceService/GetDining"
	FinanceServiceListDiningProcedure              = "/clubledger.v1.FinanceService/ListDining"
	FinanceServiceCollectDuesProcedure             = "/clubledger.v1.FinanceService/CollectDues"
	FinanceServiceRecordMemberFundExpenseProcedure = "/clubledger.v1.FinanceService/RecordMemberFundExpense"
	FinanceServiceDeleteDuesEntryProcedure         = "/clubledger.v1.FinanceService/DeleteDuesEntry"
	FinanceServiceListMemberFundProcedure          = "/clubledger.v1.FinanceService/ListMemberFund"
	FinanceServiceGetSummaryProcedure              = "/clubledger.v1.FinanceService/GetSummary"
	FinanceServiceAuditBalancesProcedure           = "/clubledger.v1.FinanceService/AuditBalances"
)

// FinanceServiceClient is a client for the three ledgers.
type FinanceServiceClient interface {
	RecordTeamFundEntry(context.Context, *connect.Request[RecordTeamFundEntryRequest]) (*connect.Response[RecordTeamFundEntryResponse], error)
	UpdateTeamFundEntry(context.Context, *connect.Request[UpdateTeamFundEntryRequest]) (*connect.Response[UpdateTeamFundEntryResponse], error)
	DeleteTeamFundEntry(context.Context, *connect.Request[DeleteTeamFundEntryRequest]) (*connect.Response[DeleteTeamFundEntryResponse], error)
	ListTeamFund(context.Context, *connect.Request[ListTeamFundRequest]) (*connect.Response[ListTeamFundResponse], error)
	ListTeamFundCategories(context.Context, *connect.Request[ListTeamFundCategoriesRequest]) (*connect.Response[ListTeamFundCategoriesResponse], error)
	RecordPersonalBatch(context.Context, *connect.Request[RecordPersonalBatchRequest]) (*connect.Response[RecordPersonalBatchResponse], error)
	EditPersonalEntry(context.Context, *connect.Request[EditPersonalEntryRequest]) (*connect.Response[EditPersonalEntryResponse], error)
	DeletePersonalEntry(context.Context, *connect.Request[DeletePersonalEntryRequest]) (*connect.Response[DeletePersonalEntryResponse], error)
	ListPersonal(context.Context, *connect.Request[ListPersonalRequest]) (*connect.Response[ListPersonalResponse], error)
	SettleDining(context.Context, *connect.Request[SettleDiningRequest]) (*connect.Response[SettleDiningResponse], error)
	EditDiningMetadata(context.Context, *connect.Request[EditDiningMetadataRequest]) (*connect.Response[EditDiningMetadataResponse], error)
	DeleteDining(context.Context, *connect.Request[DeleteDiningRequest]) (*connect.Response[DeleteDiningResponse], error)
	GetDining(context.Context, *connect.Request[GetDiningRequest]) (*connect.Response[GetDiningResponse], error)
	ListDining(context.Context, *connect.Request[ListDiningRequest]) (*connect.Response[ListDiningResponse], error)
	CollectDues(context.Context, *connect.Request[CollectDuesRequest]) (*connect.Response[CollectDuesResponse], error)
	RecordMemberFundExpense(context.Context, *connect.Request[RecordMemberFundExpenseRequest]) (*connect.Response[RecordMemberFundExpenseResponse], error)
	DeleteDuesEntry(context.Context, *connect.Request[DeleteDuesEntryRequest]) (*connect.Response[DeleteDuesEntryResponse], error)
	ListMemberFund(context.Context, *connect.Request[ListMemberFundRequest]) (*connect.Response[ListMemberFundResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
	AuditBalances(context.Context, *connect.Request[AuditBalancesRequest]) (*connect.Response[AuditBalancesResponse], error)
}

// NewFinanceServiceClient constructs a client for the FinanceService.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = ClientOptions(opts...)
	return &financeServiceClient{
		recordTeamFundEntry:     connect.NewClient[RecordTeamFundEntryRequest, RecordTeamFundEntryResponse](httpClient, baseURL+FinanceServiceRecordTeamFundEntryProcedure, opts...),
		updateTeamFundEntry:     connect.NewClient[UpdateTeamFundEntryRequest, UpdateTeamFundEntryResponse](httpClient, baseURL+FinanceServiceUpdateTeamFundEntryProcedure, opts...),
		deleteTeamFundEntry:     connect.NewClient[DeleteTeamFundEntryRequest, DeleteTeamFundEntryResponse](httpClient, baseURL+FinanceServiceDeleteTeamFundEntryProcedure, opts...),
		listTeamFund:            connect.NewClient[ListTeamFundRequest, ListTeamFundResponse](httpClient, baseURL+FinanceServiceListTeamFundProcedure, opts...),
		listTeamFundCategories:  connect.NewClient[ListTeamFundCategoriesRequest, ListTeamFundCategoriesResponse](httpClient, baseURL+FinanceServiceListTeamFundCategoriesProcedure, opts...),
		recordPersonalBatch:     connect.NewClient[RecordPersonalBatchRequest, RecordPersonalBatchResponse](httpClient, baseURL+FinanceServiceRecordPersonalBatchProcedure, opts...),
		editPersonalEntry:       connect.NewClient[EditPersonalEntryRequest, EditPersonalEntryResponse](httpClient, baseURL+FinanceServiceEditPersonalEntryProcedure, opts...),
		deletePersonalEntry:     connect.NewClient[DeletePersonalEntryRequest, DeletePersonalEntryResponse](httpClient, baseURL+FinanceServiceDeletePersonalEntryProcedure, opts...),
		listPersonal:            connect.NewClient[ListPersonalRequest, ListPersonalResponse](httpClient, baseURL+FinanceServiceListPersonalProcedure, opts...),
		settleDining:            connect.NewClient[SettleDiningRequest, SettleDiningResponse](httpClient, baseURL+FinanceServiceSettleDiningProcedure, opts...),
		editDiningMetadata:      connect.NewClient[EditDiningMetadataRequest, EditDiningMetadataResponse](httpClient, baseURL+FinanceServiceEditDiningMetadataProcedure, opts...),
		deleteDining:            connect.NewClient[DeleteDiningRequest, DeleteDiningResponse](httpClient, baseURL+FinanceServiceDeleteDiningProcedure, opts...),
		getDining:               connect.NewClient[GetDiningRequest, GetDiningResponse](httpClient, baseURL+FinanceServiceGetDiningProcedure, opts...),
		listDining:              connect.NewClient[ListDiningRequest, ListDiningResponse](httpClient, baseURL+FinanceServiceListDiningProcedure, opts...),
		collectDues:             connect.NewClient[CollectDuesRequest, CollectDuesResponse](httpClient, baseURL+FinanceServiceCollectDuesProcedure, opts...),
		recordMemberFundExpense: connect.NewClient[RecordMemberFundExpenseRequest, RecordMemberFundExpenseResponse](httpClient, baseURL+FinanceServiceRecordMemberFundExpenseProcedure, opts...),
		deleteDuesEntry:         connect.NewClient[DeleteDuesEntryRequest, DeleteDuesEntryResponse](httpClient, baseURL+FinanceServiceDeleteDuesEntryProcedure, opts...),
		listMemberFund:          connect.NewClient[ListMemberFundRequest, ListMemberFundResponse](httpClient, baseURL+FinanceServiceListMemberFundProcedure, opts...),
		getSummary:              connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+FinanceServiceGetSummaryProcedure, opts...),
		auditBalances:           connect.NewClient[AuditBalancesRequest, AuditBalancesResponse](httpClient, baseURL+FinanceServiceAuditBalancesProcedure, opts...),
	}
}

type financeServiceClient struct {
	recordTeamFundEntry     *connect.Client[RecordTeamFundEntryRequest, RecordTeamFundEntryResponse]
	updateTeamFundEntry     *connect.Client[UpdateTeamFundEntryRequest, UpdateTeamFundEntryResponse]
	deleteTeamFundEntry     *connect.Client[DeleteTeamFundEntryRequest, DeleteTeamFundEntryResponse]
	listTeamFund            *connect.Client[ListTeamFundRequest, ListTeamFundResponse]
	listTeamFundCategories  *connect.Client[ListTeamFundCategoriesRequest, ListTeamFundCategoriesResponse]
	recordPersonalBatch     *connect.Client[RecordPersonalBatchRequest, RecordPersonalBatchResponse]
	editPersonalEntry       *connect.Client[EditPersonalEntryRequest, EditPersonalEntryResponse]
	deletePersonalEntry     *connect.Client[DeletePersonalEntryRequest, DeletePersonalEntryResponse]
	listPersonal            *connect.Client[ListPersonalRequest, ListPersonalResponse]
	settleDining            *connect.Client[SettleDiningRequest, SettleDiningResponse]
	editDiningMetadata      *connect.Client[EditDiningMetadataRequest, EditDiningMetadataResponse]
	deleteDining            *connect.Client[DeleteDiningRequest, DeleteDiningResponse]
	getDining               *connect.Client[GetDiningRequest, GetDiningResponse]
	listDining              *connect.Client[ListDiningRequest, ListDiningResponse]
	collectDues             *connect.Client[CollectDuesRequest, CollectDuesResponse]
	recordMemberFundExpense *connect.Client[RecordMemberFundExpenseRequest, RecordMemberFundExpenseResponse]
	deleteDuesEntry         *connect.Client[DeleteDuesEntryRequest, DeleteDuesEntryResponse]
	listMemberFund          *connect.Client[ListMemberFundRequest, ListMemberFundResponse]
	getSummary              *connect.Client[GetSummaryRequest, GetSummaryResponse]
	auditBalances           *connect.Client[AuditBalancesRequest, AuditBalancesResponse]
}

func (c *financeServiceClient) RecordTeamFundEntry(ctx context.Context, req *connect.Request[RecordTeamFundEntryRequest]) (*connect.Response[RecordTeamFundEntryResponse], error) {
	return c.recordTeamFundEntry.CallUnary(ctx, req)
}

func (c *financeServiceClient) UpdateTeamFundEntry(ctx context.Context, req *connect.Request[UpdateTeamFundEntryRequest]) (*connect.Response[UpdateTeamFundEntryResponse], error) {
	return c.updateTeamFundEntry.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteTeamFundEntry(ctx context.Context, req *connect.Request[DeleteTeamFundEntryRequest]) (*connect.Response[DeleteTeamFundEntryResponse], error) {
	return c.deleteTeamFundEntry.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListTeamFund(ctx context.Context, req *connect.Request[ListTeamFundRequest]) (*connect.Response[ListTeamFundResponse], error) {
	return c.listTeamFund.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListTeamFundCategories(ctx context.Context, req *connect.Request[ListTeamFundCategoriesRequest]) (*connect.Response[ListTeamFundCategoriesResponse], error) {
	return c.listTeamFundCategories.CallUnary(ctx, req)
}

func (c *financeServiceClient) RecordPersonalBatch(ctx context.Context, req *connect.Request[RecordPersonalBatchRequest]) (*connect.Response[RecordPersonalBatchResponse], error) {
	return c.recordPersonalBatch.CallUnary(ctx, req)
}

func (c *financeServiceClient) EditPersonalEntry(ctx context.Context, req *connect.Request[EditPersonalEntryRequest]) (*connect.Response[EditPersonalEntryResponse], error) {
	return c.editPersonalEntry.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeletePersonalEntry(ctx context.Context, req *connect.Request[DeletePersonalEntryRequest]) (*connect.Response[DeletePersonalEntryResponse], error) {
	return c.deletePersonalEntry.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListPersonal(ctx context.Context, req *connect.Request[ListPersonalRequest]) (*connect.Response[ListPersonalResponse], error) {
	return c.listPersonal.CallUnary(ctx, req)
}

func (c *financeServiceClient) SettleDining(ctx context.Context, req *connect.Request[SettleDiningRequest]) (*connect.Response[SettleDiningResponse], error) {
	return c.settleDining.CallUnary(ctx, req)
}

func (c *financeServiceClient) EditDiningMetadata(ctx context.Context, req *connect.Request[EditDiningMetadataRequest]) (*connect.Response[EditDiningMetadataResponse], error) {
	return c.editDiningMetadata.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteDining(ctx context.Context, req *connect.Request[DeleteDiningRequest]) (*connect.Response[DeleteDiningResponse], error) {
	return c.deleteDining.CallUnary(ctx, req)
}

func (c *financeServiceClient) GetDining(ctx context.Context, req *connect.Request[GetDiningRequest]) (*connect.Response[GetDiningResponse], error) {
	return c.getDining.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListDining(ctx context.Context, req *connect.Request[ListDiningRequest]) (*connect.Response[ListDiningResponse], error) {
	return c.listDining.CallUnary(ctx, req)
}

func (c *financeServiceClient) CollectDues(ctx context.Context, req *connect.Request[CollectDuesRequest]) (*connect.Response[CollectDuesResponse], error) {
	return c.collectDues.CallUnary(ctx, req)
}

func (c *financeServiceClient) RecordMemberFundExpense(ctx context.Context, req *connect.Request[RecordMemberFundExpenseRequest]) (*connect.Response[RecordMemberFundExpenseResponse], error) {
	return c.recordMemberFundExpense.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteDuesEntry(ctx context.Context, req *connect.Request[DeleteDuesEntryRequest]) (*connect.Response[DeleteDuesEntryResponse], error) {
	return c.deleteDuesEntry.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListMemberFund(ctx context.Context, req *connect.Request[ListMemberFundRequest]) (*connect.Response[ListMemberFundResponse], error) {
	return c.listMemberFund.CallUnary(ctx, req)
}

func (c *financeServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *financeServiceClient) AuditBalances(ctx context.Context, req *connect.Request[AuditBalancesRequest]) (*connect.Response[AuditBalancesResponse], error) {
	return c.auditBalances.CallUnary(ctx, req)
}

// FinanceServiceHandler is implemented by the server.
type FinanceServiceHandler interface {
	RecordTeamFundEntry(context.Context, *connect.Request[RecordTeamFundEntryRequest]) (*connect.Response[RecordTeamFundEntryResponse], error)
	UpdateTeamFundEntry(context.Context, *connect.Request[UpdateTeamFundEntryRequest]) (*connect.Response[UpdateTeamFundEntryResponse], error)
	DeleteTeamFundEntry(context.Context, *connect.Request[DeleteTeamFundEntryRequest]) (*connect.Response[DeleteTeamFundEntryResponse], error)
	ListTeamFund(context.Context, *connect.Request[ListTeamFundRequest]) (*connect.Response[ListTeamFundResponse], error)
	ListTeamFundCategories(context.Context, *connect.Request[ListTeamFundCategoriesRequest]) (*connect.Response[ListTeamFundCategoriesResponse], error)
	RecordPersonalBatch(context.Context, *connect.Request[RecordPersonalBatchRequest]) (*connect.Response[RecordPersonalBatchResponse], error)
	EditPersonalEntry(context.Context, *connect.Request[EditPersonalEntryRequest]) (*connect.Response[EditPersonalEntryResponse], error)
	DeletePersonalEntry(context.Context, *connect.Request[DeletePersonalEntryRequest]) (*connect.Response[DeletePersonalEntryResponse], error)
	ListPersonal(context.Context, *connect.Request[ListPersonalRequest]) (*connect.Response[ListPersonalResponse], error)
	SettleDining(context.Context, *connect.Request[SettleDiningRequest]) (*connect.Response[SettleDiningResponse], error)
	EditDiningMetadata(context.Context, *connect.Request[EditDiningMetadataRequest]) (*connect.Response[EditDiningMetadataResponse], error)
	DeleteDining(context.Context, *connect.Request[DeleteDiningRequest]) (*connect.Response[DeleteDiningResponse], error)
	GetDining(context.Context, *connect.Request[GetDiningRequest]) (*connect.Response[GetDiningResponse], error)
	ListDining(context.Context, *connect.Request[ListDiningRequest]) (*connect.Response[ListDiningResponse], error)
	CollectDues(context.Context, *connect.Request[CollectDuesRequest]) (*connect.Response[CollectDuesResponse], error)
	RecordMemberFundExpense(context.Context, *connect.Request[RecordMemberFundExpenseRequest]) (*connect.Response[RecordMemberFundExpenseResponse], error)
	DeleteDuesEntry(context.Context, *connect.Request[DeleteDuesEntryRequest]) (*connect.Response[DeleteDuesEntryResponse], error)
	ListMemberFund(context.Context, *connect.Request[ListMemberFundRequest]) (*connect.Response[ListMemberFundResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
	AuditBalances(context.Context, *connect.Request[AuditBalancesRequest]) (*connect.Response[AuditBalancesResponse], error)
}

// NewFinanceServiceHandler returns the path to mount the service on and its
// handler.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = HandlerOptions(opts...)
	mux := http.NewServeMux()
	mux.Handle(FinanceServiceRecordTeamFundEntryProcedure, connect.NewUnaryHandler(FinanceServiceRecordTeamFundEntryProcedure, svc.RecordTeamFundEntry, opts...))
	mux.Handle(FinanceServiceUpdateTeamFundEntryProcedure, connect.NewUnaryHandler(FinanceServiceUpdateTeamFundEntryProcedure, svc.UpdateTeamFundEntry, opts...))
	mux.Handle(FinanceServiceDeleteTeamFundEntryProcedure, connect.NewUnaryHandler(FinanceServiceDeleteTeamFundEntryProcedure, svc.DeleteTeamFundEntry, opts...))
	mux.Handle(FinanceServiceListTeamFundProcedure, connect.NewUnaryHandler(FinanceServiceListTeamFundProcedure, svc.ListTeamFund, opts...))
	mux.Handle(FinanceServiceListTeamFundCategoriesProcedure, connect.NewUnaryHandler(FinanceServiceListTeamFundCategoriesProcedure, svc.ListTeamFundCategories, opts...))
	mux.Handle(FinanceServiceRecordPersonalBatchProcedure, connect.NewUnaryHandler(FinanceServiceRecordPersonalBatchProcedure, svc.RecordPersonalBatch, opts...))
	mux.Handle(FinanceServiceEditPersonalEntryProcedure, connect.NewUnaryHandler(FinanceServiceEditPersonalEntryProcedure, svc.EditPersonalEntry, opts...))
	mux.Handle(FinanceServiceDeletePersonalEntryProcedure, connect.NewUnaryHandler(FinanceServiceDeletePersonalEntryProcedure, svc.DeletePersonalEntry, opts...))
	mux.Handle(FinanceServiceListPersonalProcedure, connect.NewUnaryHandler(FinanceServiceListPersonalProcedure, svc.ListPersonal, opts...))
	mux.Handle(FinanceServiceSettleDiningProcedure, connect.NewUnaryHandler(FinanceServiceSettleDiningProcedure, svc.SettleDining, opts...))
	mux.Handle(FinanceServiceEditDiningMetadataProcedure, connect.NewUnaryHandler(FinanceServiceEditDiningMetadataProcedure, svc.EditDiningMetadata, opts...))
	mux.Handle(FinanceServiceDeleteDiningProcedure, connect.NewUnaryHandler(FinanceServiceDeleteDiningProcedure, svc.DeleteDining, opts...))
	mux.Handle(FinanceServiceGetDiningProcedure, connect.NewUnaryHandler(FinanceServiceGetDiningProcedure, svc.GetDining, opts...))
	mux.Handle(FinanceServiceListDiningProcedure, connect.NewUnaryHandler(FinanceServiceListDiningProcedure, svc.ListDining, opts...))
	mux.Handle(FinanceServiceCollectDuesProcedure, connect.NewUnaryHandler(FinanceServiceCollectDuesProcedure, svc.CollectDues, opts...))
	mux.Handle(FinanceServiceRecordMemberFundExpenseProcedure, connect.NewUnaryHandler(FinanceServiceRecordMemberFundExpenseProcedure, svc.RecordMemberFundExpense, opts...))
	mux.Handle(FinanceServiceDeleteDuesEntryProcedure, connect.NewUnaryHandler(FinanceServiceDeleteDuesEntryProcedure, svc.DeleteDuesEntry, opts...))
	mux.Handle(FinanceServiceListMemberFundProcedure, connect.NewUnaryHandler(FinanceServiceListMemberFundProcedure, svc.ListMemberFund, opts...))
	mux.Handle(FinanceServiceGetSummaryProcedure, connect.NewUnaryHandler(FinanceServiceGetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(FinanceServiceAuditBalancesProcedure, connect.NewUnaryHandler(FinanceServiceAuditBalancesProcedure, svc.AuditBalances, opts...))
	return "/" + FinanceServiceName + "/", mux
}
