package http

import (
	"errors"
	"net/http"

	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/order"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/generated/servers"
	"sellerdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// upstreamStatus is implemented by errors of the remote API client.
type upstreamStatus interface {
	HTTPStatus() int
}

// statusFor maps a use case error to an HTTP status.
func statusFor(err error) int {
	var upstream upstreamStatus

	switch {
	case errors.Is(err, session.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, session.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrStatusIsFinal),
		errors.Is(err, workflow.ErrTransitionInFlight):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		switch upstream.HTTPStatus() {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
			return upstream.HTTPStatus()
		default:
			return http.StatusBadGateway
		}
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unexpected errors are logged and hidden.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return writeError(ctx, status, internalErrorMessage)
	}
	return writeError(ctx, status, err.Error())
}

func writeError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// ErrorHandler renders echo errors, such as malformed parameters, as Error bodies.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMessage

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = writeError(ctx, status, message)
}
