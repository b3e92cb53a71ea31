package ports

import (
	"context"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
