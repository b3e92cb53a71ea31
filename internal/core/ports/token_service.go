package ports

import "github.com/growtiva/crm-api/internal/core/domain"

// TokenService issues and verifies signed bearer tokens. Verification is
// pure: signature + expiry checks only, no I/O and no revocation lookup.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	// Verify returns domain.ErrTokenExpired when the embedded expiry has
	// passed and domain.ErrTokenInvalid for every other failure.
	Verify(token string) (domain.Claims, error)
}
