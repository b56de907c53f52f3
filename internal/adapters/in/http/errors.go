package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shift/internal/core/domain/model/driver"
	"shift/internal/generated/servers"
	"shift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to an HTTP status.
func statusFor(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, driver.ErrPrecondition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, driver.ErrTimeGoesBackwards):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their text
// is not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if code >= http.StatusInternalServerError {
		s.log.ErrorContext(c.Request().Context(), "request failed",
			slog.String("path", c.Path()),
			slog.Any("error", err))
		message = http.StatusText(code)
	}

	return c.JSON(code, servers.Error{Code: code, Message: message})
}
