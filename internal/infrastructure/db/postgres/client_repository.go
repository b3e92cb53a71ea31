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

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	out := *c
	row := tx.QueryRow(ctx, `
		INSERT INTO clients (user_id, name, company_name, business_category, contact_email,
		                     contact_phone, status, signed_date, estimated_monthly_revenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, c.UserID, c.Name, c.CompanyName, c.BusinessCategory, c.ContactEmail,
		c.ContactPhone, c.Status, c.SignedDate, c.EstimatedMonthlyRevenue)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, company_name, business_category, contact_email,
		       contact_phone, status, signed_date, estimated_monthly_revenue,
		       created_at, updated_at
		FROM clients
		WHERE id = $1
	`, id)
	return scanClient(row)
}

// List applies the ownership filter in SQL: OwnerID zero means unrestricted,
// City filters on the owning user's city.
func (r *ClientRepository) List(ctx context.Context, filter ports.ListClientsFilter) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.user_id, c.name, c.company_name, c.business_category, c.contact_email,
		       c.contact_phone, c.status, c.signed_date, c.estimated_monthly_revenue,
		       c.created_at, c.updated_at
		FROM clients c
		JOIN users u ON u.id = c.user_id
		WHERE ($1 = 0 OR c.user_id = $1)
		  AND ($2 = '' OR u.city = $2)
		ORDER BY c.id
		OFFSET $3 LIMIT $4
	`, filter.OwnerID, filter.City, filter.Skip, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	out := *c
	row := tx.QueryRow(ctx, `
		UPDATE clients
		SET name = $2, company_name = $3, business_category = $4, contact_email = $5,
		    contact_phone = $6, status = $7, signed_date = $8,
		    estimated_monthly_revenue = $9, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, c.ID, c.Name, c.CompanyName, c.BusinessCategory, c.ContactEmail,
		c.ContactPhone, c.Status, c.SignedDate, c.EstimatedMonthlyRevenue)
	if err := row.Scan(&out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("update client: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &out, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return tx.Commit(ctx)
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.CompanyName, &c.BusinessCategory,
		&c.ContactEmail, &c.ContactPhone, &c.Status, &c.SignedDate,
		&c.EstimatedMonthlyRevenue, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}
