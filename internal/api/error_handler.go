package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
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

	// Known domain errors → deterministic HTTP codes. Messages mirror the
	// public API contract; in particular login failure never reveals whether
	// the email existed.
	switch {
	case errors.Is(err, domain.ErrInvalidBusinessID):
		return http.StatusBadRequest, "Invalid business ID"
	case errors.Is(err, domain.ErrInvalidReviewID):
		return http.StatusBadRequest, "Invalid review ID"
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, "Rating must be between 1 and 5"
	case errors.Is(err, domain.ErrEmptyReviewText):
		return http.StatusBadRequest, "Rating and text are required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrAdminRequired):
		return http.StatusForbidden, "Admin access required"
	case errors.Is(err, domain.ErrNotReviewOwner):
		return http.StatusForbidden, "You can only edit your own reviews"
	case errors.Is(err, domain.ErrBusinessNotFound):
		return http.StatusNotFound, "Business not found"
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, "Review not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "Username already exists"
	case errors.Is(err, domain.ErrDuplicateReview):
		return http.StatusConflict, "You have already reviewed this business"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
