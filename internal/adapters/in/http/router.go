// Package http is the echo adapter exposing docflow use cases.
package http

import (
	"net/http"

	"docflow/internal/generated/servers"
	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: health, metrics, swagger UI and the
// OpenAPI-validated API routes.
func NewRouter(server *Server, metrics *Metrics) (*echo.Echo, error) {
	if server == nil {
		return nil, errs.NewValueIsRequiredError("server")
	}
	if metrics == nil {
		return nil, errs.NewValueIsRequiredError("metrics")
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = servers.RegisterSwaggerDoc(); err != nil {
		return nil, err
	}
	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validate)
	servers.RegisterHandlers(api, server)

	return e, nil
}
