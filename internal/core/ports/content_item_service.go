package ports

import (
	"context"

	"github.com/growtiva/crm-api/internal/core/domain"
)

// ContentItemInput carries the writable fields of a content item.
type ContentItemInput struct {
	ContentType      string
	Title            string
	Description      string
	InstagramPostURL string
}

// ListContentItemsInput carries the caller-supplied list parameters.
// ClientID zero means all clients visible to the caller.
type ListContentItemsInput struct {
	ClientID int64
	Skip     int
	Limit    int
}

// ContentItemService defines use-case operations for content items.
// Ownership is always evaluated against the parent client's owner.
type ContentItemService interface {
	List(ctx context.Context, claims domain.Claims, input ListContentItemsInput) ([]*domain.ContentItem, error)
	Get(ctx context.Context, claims domain.Claims, id int64) (*domain.ContentItem, error)
	// Create attaches a new item to clientID after checking the caller may
	// act on that client; nothing is written when the check fails.
	Create(ctx context.Context, claims domain.Claims, clientID int64, input ContentItemInput) (*domain.ContentItem, error)
	Update(ctx context.Context, claims domain.Claims, id int64, input ContentItemInput) (*domain.ContentItem, error)
	Delete(ctx context.Context, claims domain.Claims, id int64) error
}
