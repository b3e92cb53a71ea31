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

const prospectColumns = `id, user_id, name, company_name, business_category, contact_email,
	contact_phone, interest_level, status, next_follow_up_date, notes, created_at, updated_at`

type ProspectRepository struct {
	pool *pgxpool.Pool
}

func NewProspectRepository(pool *pgxpool.Pool) *ProspectRepository {
	return &ProspectRepository{pool: pool}
}

func (r *ProspectRepository) Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	out := *p
	row := tx.QueryRow(ctx, `
		INSERT INTO prospects (user_id, name, company_name, business_category, contact_email,
		                       contact_phone, interest_level, status, next_follow_up_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, p.UserID, p.Name, p.CompanyName, p.BusinessCategory, p.ContactEmail,
		p.ContactPhone, p.InterestLevel, p.Status, p.NextFollowUpDate, p.Notes)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert prospect: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &out, nil
}

func (r *ProspectRepository) FindByID(ctx context.Context, id int64) (*domain.Prospect, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects
		WHERE id = $1
	`, id)
	return scanProspect(row)
}

func (r *ProspectRepository) List(ctx context.Context, filter ports.ListProspectsFilter) ([]*domain.Prospect, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects
		WHERE ($1 = 0 OR user_id = $1)
		ORDER BY id
		OFFSET $2 LIMIT $3
	`, filter.OwnerID, filter.Skip, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	defer rows.Close()
	return collectProspects(rows)
}

// ListRecommended selects prospects still in the new/contacted stage, high
// interest first, earliest follow-up date next.
func (r *ProspectRepository) ListRecommended(ctx context.Context, filter ports.RecommendedFilter) ([]*domain.Prospect, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects
		WHERE ($1 = 0 OR user_id = $1)
		  AND status IN ($2, $3)
		ORDER BY (interest_level = $4) DESC, next_follow_up_date ASC NULLS LAST, id
		LIMIT $5
	`, filter.OwnerID, domain.ProspectStatusNew, domain.ProspectStatusContacted,
		domain.InterestHigh, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list recommended prospects: %w", err)
	}
	defer rows.Close()
	return collectProspects(rows)
}

func (r *ProspectRepository) Update(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	out := *p
	row := tx.QueryRow(ctx, `
		UPDATE prospects
		SET name = $2, company_name = $3, business_category = $4, contact_email = $5,
		    contact_phone = $6, interest_level = $7, status = $8,
		    next_follow_up_date = $9, notes = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, p.ID, p.Name, p.CompanyName, p.BusinessCategory, p.ContactEmail,
		p.ContactPhone, p.InterestLevel, p.Status, p.NextFollowUpDate, p.Notes)
	if err := row.Scan(&out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProspectNotFound
		}
		return nil, fmt.Errorf("update prospect: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &out, nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM prospects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prospect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProspectNotFound
	}

	return tx.Commit(ctx)
}

func collectProspects(rows pgx.Rows) ([]*domain.Prospect, error) {
	prospects := make([]*domain.Prospect, 0)
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, err
		}
		prospects = append(prospects, p)
	}
	return prospects, rows.Err()
}

func scanProspect(row pgx.Row) (*domain.Prospect, error) {
	var p domain.Prospect
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CompanyName, &p.BusinessCategory,
		&p.ContactEmail, &p.ContactPhone, &p.InterestLevel, &p.Status,
		&p.NextFollowUpDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProspectNotFound
		}
		return nil, fmt.Errorf("scan prospect: %w", err)
	}
	return &p, nil
}
