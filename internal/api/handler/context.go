package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/api/middleware"
	"github.com/growtiva/crm-api/internal/core/domain"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// claimsFrom extracts the claims injected by the Auth middleware. Presence
// proves the middleware ran; a protected handler reached without it is a
// routing bug and fails closed with 401.
func claimsFrom(c echo.Context) (domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// pagination reads the skip/limit query parameters with defaults 0/100.
func pagination(c echo.Context) (skip, limit int) {
	skip = queryInt(c, "skip", defaultSkip)
	limit = queryInt(c, "limit", defaultLimit)
	if skip < 0 {
		skip = defaultSkip
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return skip, limit
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
