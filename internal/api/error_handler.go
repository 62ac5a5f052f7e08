package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/api/handler"
	"github.com/userhub/account-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and the exact
//     client messages callers already parse.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Validation failures carry per-field detail.
		var fe *handler.FieldErrors
		if errors.As(err, &fe) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{Error: fe.First, Fields: fe.Fields})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The same wording
	// covers "no such account" and "wrong password" so responses never
	// reveal which emails are registered.
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusBadRequest, "User already registered."
	case errors.Is(err, domain.ErrUnknownCredentials):
		return http.StatusUnauthorized, "Invalid Email or password"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, "Invalid Email or password"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusBadRequest, "Invalid Email or password"
	case errors.Is(err, domain.ErrAccountNotConfirmed):
		return http.StatusUnauthorized, "Account is not confirmed. Please confirm your account."
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, "Account is not active. Please contact admin."
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		return http.StatusUnauthorized, "Account already confirmed."
	case errors.Is(err, domain.ErrOTPMismatch):
		return http.StatusUnauthorized, "Otp does not match"
	case errors.Is(err, domain.ErrOTPTriesExceeded):
		return http.StatusUnauthorized, "Otp tries exceeded. Please request a new code."
	case errors.Is(err, domain.ErrNoToken):
		return http.StatusUnauthorized, "Access denied. No token provided."
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
