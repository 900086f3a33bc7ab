package http

import (
	"context"
	"log/slog"
	"net/http"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/services"
	"docflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case handlers the server delegates to.
type (
	ChangePackageStatusHandler interface {
		Handle(ctx context.Context, command commands.ChangePackageStatusCommand) (commands.ChangePackageStatusResult, error)
	}

	CreatePackageHandler interface {
		Handle(ctx context.Context, command commands.CreatePackageCommand) (kernel.UUID, error)
	}

	GetPackageHandler interface {
		Handle(ctx context.Context, query queries.GetPackageQuery) (queries.GetPackageQueryResponse, error)
	}

	GetAvailableStatusesHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableStatusesQuery) (queries.GetAvailableStatusesQueryResponse, error)
	}

	GetForwardActionSummaryHandler interface {
		Handle(ctx context.Context, query queries.GetForwardActionSummaryQuery) (services.ForwardActionSummary, error)
	}

	GetForwardActionsHandler interface {
		Handle(ctx context.Context, query queries.GetForwardActionsQuery) ([]services.ForwardAction, error)
	}

	GetStatusesForActorHandler interface {
		Handle(ctx context.Context, query queries.GetStatusesForActorQuery) ([]queries.GetStatusesForActorQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	ChangePackageStatus     ChangePackageStatusHandler
	CreatePackage           CreatePackageHandler
	GetPackage              GetPackageHandler
	GetAvailableStatuses    GetAvailableStatusesHandler
	GetForwardActionSummary GetForwardActionSummaryHandler
	GetForwardActions       GetForwardActionsHandler
	GetStatusesForActor     GetStatusesForActorHandler
}

// Server implements servers.ServerInterface. It only translates between HTTP
// models and use cases; every decision is made by the handlers.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the strict server implementation for the generated
// router.
func NewServer(handlers Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http-server"),
	}
}

// GetStatuses handles GET /api/v1/statuses.
func (s *Server) GetStatuses(ctx echo.Context, params servers.GetStatusesParams) error {
	who, err := actorFromParams(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetStatusesForActorQuery(who)
	if err != nil {
		return s.fail(ctx, err)
	}

	statuses, err := s.handlers.GetStatusesForActor.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Status, len(statuses))
	for i, st := range statuses {
		response[i] = servers.Status{Id: int(st.ID), Name: st.Name, Label: st.Label}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePackage handles POST /api/v1/packages. Only operators create packages;
// the requesting operator becomes the package operator.
func (s *Server) CreatePackage(ctx echo.Context, params servers.CreatePackageParams) error {
	who, err := actorFromParams(params)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !who.IsOperator() {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Only operators can create packages",
		})
	}

	var body servers.CreatePackageJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	counterpartyID, err := kernel.UUIDFromBytes(body.CounterpartyId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(), docpackage.Type(body.Type), counterpartyID, who.ID(), body.Period,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreatePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PackageCreated{Id: id.Bytes()})
}

// GetPackage handles GET /api/v1/packages/{id}.
func (s *Server) GetPackage(ctx echo.Context, id openapi_types.UUID, params servers.GetPackageParams) error {
	packageID, who, err := packageAndActor(id, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPackageQuery(packageID, who)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetPackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackage(response))
}

// GetAvailableStatuses handles GET /api/v1/packages/{id}/statuses.
func (s *Server) GetAvailableStatuses(
	ctx echo.Context,
	id openapi_types.UUID,
	params servers.GetAvailableStatusesParams,
) error {
	packageID, who, err := packageAndActor(id, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetAvailableStatusesQuery(packageID, who)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetAvailableStatuses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries := make([]servers.AvailabilityEntry, len(response.Entries))
	for i, e := range response.Entries {
		entries[i] = toAvailabilityEntry(e)
	}

	return ctx.JSON(http.StatusOK, servers.AvailableStatuses{
		PackageId: response.PackageID.Bytes(),
		Current:   toStatus(response.Current),
		Statuses:  entries,
	})
}

// GetForwardActionSummary handles GET /api/v1/packages/{id}/actions/summary.
func (s *Server) GetForwardActionSummary(
	ctx echo.Context,
	id openapi_types.UUID,
	params servers.GetForwardActionSummaryParams,
) error {
	packageID, who, err := packageAndActor(id, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetForwardActionSummaryQuery(packageID, who)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary, err := s.handlers.GetForwardActionSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ForwardActionSummary{
		StatusChangeMessage: summary.StatusChangeMessage,
		BlockingMessage:     summary.BlockingMessage,
	})
}

// GetForwardActions handles GET /api/v1/packages/{id}/actions/forward.
func (s *Server) GetForwardActions(
	ctx echo.Context,
	id openapi_types.UUID,
	params servers.GetForwardActionsParams,
) error {
	packageID, who, err := packageAndActor(id, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetForwardActionsQuery(packageID, who)
	if err != nil {
		return s.fail(ctx, err)
	}

	actions, err := s.handlers.GetForwardActions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ForwardAction, len(actions))
	for i, a := range actions {
		messages := a.Messages
		if messages == nil {
			messages = []string{}
		}
		response[i] = servers.ForwardAction{
			Target:   toAvailabilityEntry(a.Target),
			Title:    a.Title,
			Messages: messages,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangePackageStatus handles POST /api/v1/packages/{id}/status.
func (s *Server) ChangePackageStatus(
	ctx echo.Context,
	id openapi_types.UUID,
	params servers.ChangePackageStatusParams,
) error {
	packageID, who, err := packageAndActor(id, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ChangePackageStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	target := status.Status(body.Status)
	cmd, err := commands.NewChangePackageStatusCommand(packageID, target, who)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ChangePackageStatus.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveStatusChange(target, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ChangeStatusResult{
		PackageId: result.PackageID.Bytes(),
		Previous:  toStatus(result.Previous),
		Current:   toStatus(result.Current),
	})
}
