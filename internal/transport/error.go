package transport

import (
	"errors"
	"net/http"

	"gocart-be/internal/apperr"
	"gocart-be/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps the shared error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrExpired):
		return http.StatusGone
	case errors.Is(err, apperr.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler turns domain errors into the response envelope. Internal
// errors are logged but never leak their message to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, _ := httpErr.Message.(string)
		_ = Fail(c, httpErr.Code, msg)
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request().Context()).Error("unhandled error", zap.Error(err))
		_ = Fail(c, status, "")
		return
	}

	_ = Fail(c, status, err.Error())
}
