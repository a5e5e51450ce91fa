package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"parcelhub/internal/core/application/auth"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/generated/servers"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	errUnauthenticated = errors.New("sign in required")
	errForbidden       = errors.New("not allowed for this role")
)

// fail writes err as a servers.Error. Only unexpected errors are logged.
func (s *Server) fail(ctx echo.Context, err error) error {
	var (
		validationErr *errs.ValidationError
		fieldErr      errs.FieldError
	)

	switch {
	case errors.As(err, &validationErr):
		return writeError(ctx, http.StatusBadRequest, "Validation failed", validationErr.Fields())
	case errors.As(err, &fieldErr):
		return writeError(ctx, http.StatusBadRequest, "Validation failed", []string{fieldErr.Field()})
	case errors.Is(err, errUnauthenticated),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, ports.ErrInvalidCredentials):
		return writeError(ctx, http.StatusUnauthorized, "Invalid or missing credentials", nil)
	case errors.Is(err, errForbidden):
		return writeError(ctx, http.StatusForbidden, "Operation not allowed for this role", nil)
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, errs.ErrInvalidStateTransfer), errors.Is(err, errs.ErrObjectAlreadyExists):
		return writeError(ctx, http.StatusConflict, err.Error(), nil)
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"route", ctx.Path(),
			"error", err,
		)
		return writeError(ctx, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func writeError(ctx echo.Context, code int, message string, fields []string) error {
	body := servers.Error{Code: code, Message: message}
	if len(fields) > 0 {
		body.Fields = &fields
	}
	return ctx.JSON(code, body)
}

func invalidBody(ctx echo.Context) error {
	return writeError(ctx, http.StatusBadRequest, "Invalid request body", nil)
}

// ErrorHandler renders errors that escape handlers, such as unknown routes or
// unparseable path parameters, in the same shape as handler errors.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "route", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = writeError(c, code, message, nil)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", err)
		}
	}
}
