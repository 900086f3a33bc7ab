package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Statuses the actor may browse packages in
	// (GET /api/v1/statuses)
	GetStatuses(ctx echo.Context, params GetStatusesParams) error
	// Create a package in Draft
	// (POST /api/v1/packages)
	CreatePackage(ctx echo.Context, params CreatePackageParams) error
	// Package with its documents
	// (GET /api/v1/packages/{id})
	GetPackage(ctx echo.Context, id openapi_types.UUID, params GetPackageParams) error
	// Status changes offered to the actor
	// (GET /api/v1/packages/{id}/statuses)
	GetAvailableStatuses(ctx echo.Context, id openapi_types.UUID, params GetAvailableStatusesParams) error
	// Short hint about the next forward change
	// (GET /api/v1/packages/{id}/actions/summary)
	GetForwardActionSummary(ctx echo.Context, id openapi_types.UUID, params GetForwardActionSummaryParams) error
	// Forward changes with the reasons they are blocked
	// (GET /api/v1/packages/{id}/actions/forward)
	GetForwardActions(ctx echo.Context, id openapi_types.UUID, params GetForwardActionsParams) error
	// Change the package status
	// (POST /api/v1/packages/{id}/status)
	ChangePackageStatus(ctx echo.Context, id openapi_types.UUID, params ChangePackageStatusParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetStatuses converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatuses(ctx echo.Context) error {
	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetStatuses(ctx, params)
}

// CreatePackage converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePackage(ctx echo.Context) error {
	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreatePackage(ctx, params)
}

// GetPackage converts echo context to params.
func (w *ServerInterfaceWrapper) GetPackage(ctx echo.Context) error {
	id, params, err := bindPackageParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPackage(ctx, id, params)
}

// GetAvailableStatuses converts echo context to params.
func (w *ServerInterfaceWrapper) GetAvailableStatuses(ctx echo.Context) error {
	id, params, err := bindPackageParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetAvailableStatuses(ctx, id, params)
}

// GetForwardActionSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetForwardActionSummary(ctx echo.Context) error {
	id, params, err := bindPackageParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetForwardActionSummary(ctx, id, params)
}

// GetForwardActions converts echo context to params.
func (w *ServerInterfaceWrapper) GetForwardActions(ctx echo.Context) error {
	id, params, err := bindPackageParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetForwardActions(ctx, id, params)
}

// ChangePackageStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangePackageStatus(ctx echo.Context) error {
	id, params, err := bindPackageParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangePackageStatus(ctx, id, params)
}

func bindPackageParams(ctx echo.Context) (openapi_types.UUID, ActorParams, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, ActorParams{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	params, err := bindActorParams(ctx)
	return id, params, err
}

func bindActorParams(ctx echo.Context) (ActorParams, error) {
	var params ActorParams
	headers := ctx.Request().Header

	// ------------- Required header parameter "X-Actor-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]; found {
		var XActorID openapi_types.UUID
		n := len(valueList)
		if n != 1 {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
		}

		err := runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &XActorID,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
		}

		params.XActorID = XActorID
	} else {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor-ID is required, but not found")
	}

	// ------------- Required header parameter "X-Actor-Role" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-Role")]; found {
		var XActorRole ActorRole
		n := len(valueList)
		if n != 1 {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-Role, got %d", n))
		}

		err := runtime.BindStyledParameterWithOptions("simple", "X-Actor-Role", valueList[0], &XActorRole,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-Role: %s", err))
		}

		params.XActorRole = XActorRole
	} else {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor-Role is required, but not found")
	}

	return params, nil
}

// EchoRouter is the subset of echo routing used by RegisterHandlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/statuses", wrapper.GetStatuses)
	router.POST(baseURL+"/api/v1/packages", wrapper.CreatePackage)
	router.GET(baseURL+"/api/v1/packages/:id", wrapper.GetPackage)
	router.GET(baseURL+"/api/v1/packages/:id/statuses", wrapper.GetAvailableStatuses)
	router.GET(baseURL+"/api/v1/packages/:id/actions/summary", wrapper.GetForwardActionSummary)
	router.GET(baseURL+"/api/v1/packages/:id/actions/forward", wrapper.GetForwardActions)
	router.POST(baseURL+"/api/v1/packages/:id/status", wrapper.ChangePackageStatus)
}
