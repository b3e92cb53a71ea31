package ports

import (
	"context"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// ListContentItemsFilter carries query parameters for listing content items.
// OwnerID restricts to items whose parent client belongs to that user (zero =
// no restriction); ClientID optionally narrows to a single client.
type ListContentItemsFilter struct {
	OwnerID  int64
	ClientID int64
	Skip     int
	Limit    int
}

// ContentItemRepository defines persistence operations for content items.
type ContentItemRepository interface {
	Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	FindByID(ctx context.Context, id int64) (*domain.ContentItem, error)
	List(ctx context.Context, filter ListContentItemsFilter) ([]*domain.ContentItem, error)
	Update(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	Delete(ctx context.Context, id int64) error
}
