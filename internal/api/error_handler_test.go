package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/growtiva/crm-api/internal/core/domain"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the JSON error envelope: %v", err)
	}
	msg, ok := body["error"]
	if !ok {
		t.Fatalf("envelope missing error key: %s", rec.Body.String())
	}
	return msg
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect email or password"},
		{"account inactive", domain.ErrAccountInactive, http.StatusUnauthorized, "account inactive"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, "could not validate credentials"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
		{"prospect not found", domain.ErrProspectNotFound, http.StatusNotFound, "prospect not found"},
		{"content item not found", domain.ErrContentItemNotFound, http.StatusNotFound, "content item not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{"duplicate", domain.ErrDuplicate, http.StatusBadRequest, "duplicate record"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveError(t, tc.err)
			if rec.Code != tc.code {
				t.Errorf("expected status %d, got %d", tc.code, rec.Code)
			}
			if msg := decodeError(t, rec); msg != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestErrorHandler_BearerChallengeOn401(t *testing.T) {
	for _, err := range []error{
		domain.ErrInvalidCredentials,
		domain.ErrAccountInactive,
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
	} {
		rec := serveError(t, err)
		if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
			t.Errorf("%v: expected WWW-Authenticate: Bearer, got %q", err, got)
		}
	}
}

func TestErrorHandler_NoChallengeBelow401(t *testing.T) {
	rec := serveError(t, domain.ErrForbidden)
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "" {
		t.Errorf("403 must not carry a challenge, got %q", got)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "invalid payload" {
		t.Errorf("expected message preserved, got %q", msg)
	}
}

func TestErrorHandler_UnknownErrorHidden(t *testing.T) {
	rec := serveError(t, errSentinel)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "internal server error" {
		t.Errorf("internal cause must not leak, got %q", msg)
	}
}

var errSentinel = &customError{}

type customError struct{}

func (e *customError) Error() string { return "pgx: connection refused to 10.0.0.5" }
