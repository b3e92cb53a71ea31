package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/api/metrics"
	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

// claimsKey is the echo context key the verified claims are stored under.
const claimsKey = "auth.claims"

// Auth resolves the bearer token into a typed domain.Claims and injects it
// into the request context. Claims are derived fresh on every request and
// never cached. All failures surface as 401 with a Bearer challenge; expiry
// is reported distinctly so clients can trigger re-login.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return domain.ErrTokenInvalid
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrTokenInvalid
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Auth.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(domain.Claims)
	return claims, ok
}

// SetClaims stores claims the way Auth does. Intended for tests.
func SetClaims(c echo.Context, claims domain.Claims) {
	c.Set(claimsKey, claims)
}

// RequireAdmin passes the request through untouched when the resolved claims
// carry the admin role. It composes after Auth and never re-verifies the
// token.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return domain.ErrTokenInvalid
		}
		if !claims.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
		}
		return next(c)
	}
}
