package ports

import (
	"context"
	"time"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// ClientInput carries the writable fields of a client. The owner is never
// part of the input: it is fixed from the caller's claims at creation time.
type ClientInput struct {
	Name                    string
	CompanyName             string
	BusinessCategory        string
	ContactEmail            string
	ContactPhone            string
	Status                  string
	SignedDate              *time.Time
	EstimatedMonthlyRevenue float64
}

// ListClientsInput carries the caller-supplied list parameters before the
// ownership policy is applied.
type ListClientsInput struct {
	City  string
	Skip  int
	Limit int
}

// ClientService defines use-case operations for clients. Every method takes
// the caller's claims explicitly and applies the ownership policy.
type ClientService interface {
	List(ctx context.Context, claims domain.Claims, input ListClientsInput) ([]*domain.Client, error)
	Get(ctx context.Context, claims domain.Claims, id int64) (*domain.Client, error)
	Create(ctx context.Context, claims domain.Claims, input ClientInput) (*domain.Client, error)
	Update(ctx context.Context, claims domain.Claims, id int64, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, claims domain.Claims, id int64) error
}
