package domain

import "errors"

// Role is the closed set of access roles a user can hold.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleFranchise Role = "franchise"
	RoleUser      Role = "user"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole validates a raw role string at the boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleFranchise, RoleUser:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}
