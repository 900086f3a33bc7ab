package http

import (
	"errors"
	"net/http"

	"docflow/internal/core/domain/transition"
	"docflow/internal/generated/servers"
	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// fail writes the error response for a use case failure. Status change
// refusals carry their displayable message and remediation; configuration and
// infrastructure failures only the generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	var changeErr *transition.ChangeStatusError
	if errors.As(err, &changeErr) {
		if isRefusal(changeErr) {
			code := string(changeErr.Code())
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:        http.StatusBadRequest,
				Message:     changeErr.Message(),
				ErrorCode:   &code,
				Remediation: toRemediation(changeErr.Remediation()),
			})
		}

		s.logger.ErrorContext(ctx.Request().Context(), "status change failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: changeErr.Message(),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, transition.ErrUnknownPackageType):
		return badRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	}

	s.logger.ErrorContext(ctx.Request().Context(), "request failed", "error", err)
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: internalErrorMessage,
	})
}

// isRefusal reports whether the engine declined the change for a reason the
// actor can act on.
func isRefusal(err *transition.ChangeStatusError) bool {
	return errors.Is(err, transition.ErrValidation) || errors.Is(err, transition.ErrUnexpectedStatusChange)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
