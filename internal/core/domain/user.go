package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
)

// User models an authenticated actor in the system. Role and IsActive are
// admin-only mutations; HashedPassword never leaves the process.
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Role           Role       `json:"role"`
	HashedPassword string     `json:"-"`
	Name           string     `json:"name"`
	City           string     `json:"city"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
