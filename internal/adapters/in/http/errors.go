package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ordertracker/internal/generated/servers"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// statusFor maps a use case error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	default:
		// Duplicate ids land here too.
		return http.StatusInternalServerError
	}
}

// errorMessage flattens joined errors into one line.
func errorMessage(err error) string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		parts := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			if e != nil {
				parts = append(parts, e.Error())
			}
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := errorMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		if !errs.IsAlreadyExists(err) {
			message = internalErrorMessage
		}
	}

	return ctx.JSON(status, servers.Error{Error: message})
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return fmt.Sprint(httpErr.Message)
}

// NewHTTPErrorHandler renders errors that escape handlers, such as unknown
// routes or bad path parameters, as {"error": message}.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := internalErrorMessage

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = httpErrorMessage(httpErr)
		}

		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(code)
			return
		}
		_ = ctx.JSON(code, servers.Error{Error: message})
	}
}
