package domain

import (
	"errors"
	"time"
)

var (
	ErrContentItemNotFound = errors.New("content item not found")

	// ErrDuplicate signals a unique-constraint violation on a mutating write.
	ErrDuplicate = errors.New("duplicate record")
)

// ContentItem is a piece of delivered content (an Instagram post) attached to
// a client. Ownership is transitive: the item belongs to whoever owns the
// parent client.
type ContentItem struct {
	ID               int64      `json:"id"`
	ClientID         int64      `json:"client_id"`
	ContentType      string     `json:"content_type"`
	Title            string     `json:"title,omitempty"`
	Description      string     `json:"description,omitempty"`
	InstagramPostURL string     `json:"instagram_post_url"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
