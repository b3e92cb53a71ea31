package ports

import (
	"context"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// ListClientsFilter carries query parameters for listing clients.
// OwnerID is set by the service layer from the caller's claims; zero means no
// ownership restriction (admin). City filters on the owning user's city.
type ListClientsFilter struct {
	OwnerID int64
	City    string
	Skip    int
	Limit   int
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
