package ports

import (
	"context"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// ListProspectsFilter carries query parameters for listing prospects.
// OwnerID zero means no ownership restriction (admin).
type ListProspectsFilter struct {
	OwnerID int64
	Skip    int
	Limit   int
}

// RecommendedFilter selects prospects worth following up next: status new or
// contacted, high interest first, earliest follow-up date next.
type RecommendedFilter struct {
	OwnerID int64
	Limit   int
}

// ProspectRepository defines persistence operations for prospects.
type ProspectRepository interface {
	Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error)
	FindByID(ctx context.Context, id int64) (*domain.Prospect, error)
	List(ctx context.Context, filter ListProspectsFilter) ([]*domain.Prospect, error)
	ListRecommended(ctx context.Context, filter RecommendedFilter) ([]*domain.Prospect, error)
	Update(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error)
	Delete(ctx context.Context, id int64) error
}
