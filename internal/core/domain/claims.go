package domain

import "errors"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrForbidden    = errors.New("access forbidden")
)

// Claims is the verified identity carried by a bearer token. It is derived
// fresh from the token on every request and never persisted.
type Claims struct {
	UserID int64  `json:"id"`
	Role   Role   `json:"role"`
	City   string `json:"city,omitempty"`
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccess reports whether the claims may read or mutate a resource owned by
// ownerID. Admins bypass the ownership restriction; everyone else only
// reaches their own rows.
func (c Claims) CanAccess(ownerID int64) bool {
	return c.IsAdmin() || c.UserID == ownerID
}
