package ports

import (
	"context"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// CreateUserInput carries the fields for creating a user (admin only).
type CreateUserInput struct {
	Email    string
	Password string
	Role     string
	Name     string
	City     string
}

// UpdateUserInput carries the mutable user fields. Role and IsActive are
// pointers so their presence can be detected: both are admin-only mutations,
// rejected atomically for everyone else even on self-update.
type UpdateUserInput struct {
	Email    string
	Name     string
	City     string
	Password string
	Role     *string
	IsActive *bool
}

// UserService defines use-case operations for users. List, Create and Delete
// are admin-gated at the route; Get and Update enforce the self-or-admin rule
// here.
type UserService interface {
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, claims domain.Claims, id int64) (*domain.User, error)
	Update(ctx context.Context, claims domain.Claims, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
