package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

type ContentItemRepository struct {
	pool *pgxpool.Pool
}

func NewContentItemRepository(pool *pgxpool.Pool) *ContentItemRepository {
	return &ContentItemRepository{pool: pool}
}

func (r *ContentItemRepository) Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	out := *item
	row := tx.QueryRow(ctx, `
		INSERT INTO content_items (client_id, content_type, title, description, instagram_post_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, item.ClientID, item.ContentType, item.Title, item.Description, item.InstagramPostURL)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert content item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &out, nil
}

func (r *ContentItemRepository) FindByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, client_id, content_type, title, description, instagram_post_url,
		       created_at, updated_at
		FROM content_items
		WHERE id = $1
	`, id)
	return scanContentItem(row)
}

// List joins the parent client so the ownership filter can be evaluated
// against the client's owner (items carry no owner column of their own).
func (r *ContentItemRepository) List(ctx context.Context, filter ports.ListContentItemsFilter) ([]*domain.ContentItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ci.id, ci.client_id, ci.content_type, ci.title, ci.description,
		       ci.instagram_post_url, ci.created_at, ci.updated_at
		FROM content_items ci
		JOIN clients c ON c.id = ci.client_id
		WHERE ($1 = 0 OR c.user_id = $1)
		  AND ($2 = 0 OR ci.client_id = $2)
		ORDER BY ci.id
		OFFSET $3 LIMIT $4
	`, filter.OwnerID, filter.ClientID, filter.Skip, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ContentItem, 0)
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ContentItemRepository) Update(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	out := *item
	row := tx.QueryRow(ctx, `
		UPDATE content_items
		SET content_type = $2, title = $3, description = $4, instagram_post_url = $5,
		    updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, item.ID, item.ContentType, item.Title, item.Description, item.InstagramPostURL)
	if err := row.Scan(&out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentItemNotFound
		}
		return nil, fmt.Errorf("update content item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &out, nil
}

func (r *ContentItemRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentItemNotFound
	}

	return tx.Commit(ctx)
}

func scanContentItem(row pgx.Row) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := row.Scan(&item.ID, &item.ClientID, &item.ContentType, &item.Title,
		&item.Description, &item.InstagramPostURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentItemNotFound
		}
		return nil, fmt.Errorf("scan content item: %w", err)
	}
	return &item, nil
}
