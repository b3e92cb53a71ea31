package ports

import (
	"context"
	"time"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// ProspectInput carries the writable fields of a prospect.
type ProspectInput struct {
	Name             string
	CompanyName      string
	BusinessCategory string
	ContactEmail     string
	ContactPhone     string
	InterestLevel    string
	Status           string
	NextFollowUpDate *time.Time
	Notes            string
}

// ListProspectsInput carries the caller-supplied list parameters.
type ListProspectsInput struct {
	Skip  int
	Limit int
}

// ProspectService defines use-case operations for prospects.
type ProspectService interface {
	List(ctx context.Context, claims domain.Claims, input ListProspectsInput) ([]*domain.Prospect, error)
	// Recommended returns the prospects worth contacting next, ownership-filtered.
	Recommended(ctx context.Context, claims domain.Claims, limit int) ([]*domain.Prospect, error)
	Get(ctx context.Context, claims domain.Claims, id int64) (*domain.Prospect, error)
	Create(ctx context.Context, claims domain.Claims, input ProspectInput) (*domain.Prospect, error)
	Update(ctx context.Context, claims domain.Claims, id int64, input ProspectInput) (*domain.Prospect, error)
	Delete(ctx context.Context, claims domain.Claims, id int64) error
}
