package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidBusinessID, http.StatusBadRequest, "Invalid business ID"},
		{domain.ErrInvalidReviewID, http.StatusBadRequest, "Invalid review ID"},
		{domain.ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{domain.ErrEmptyReviewText, http.StatusBadRequest, "Rating and text are required"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{domain.ErrAdminRequired, http.StatusForbidden, "Admin access required"},
		{domain.ErrNotReviewOwner, http.StatusForbidden, "You can only edit your own reviews"},
		{domain.ErrBusinessNotFound, http.StatusNotFound, "Business not found"},
		{domain.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrEmailTaken, http.StatusConflict, "Email already exists"},
		{domain.ErrUsernameTaken, http.StatusConflict, "Username already exists"},
		{domain.ErrDuplicateReview, http.StatusConflict, "You have already reviewed this business"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrBusinessNotFound)
	code, msg := renderError(t, wrapped)
	if code != http.StatusNotFound || msg != "Business not found" {
		t.Fatalf("wrapped error not unwrapped: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized || msg != "missing authorization header" {
		t.Fatalf("echo error not passed through: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorHidden(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: topology closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
