package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema bootstraps the development database. Production deployments run
// managed migrations instead; EnsureSchema is only invoked when ENV=development.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id               BIGSERIAL PRIMARY KEY,
	email            TEXT NOT NULL UNIQUE,
	role             TEXT NOT NULL,
	hashed_password  TEXT NOT NULL,
	name             TEXT NOT NULL,
	city             TEXT NOT NULL,
	is_active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS clients (
	id                        BIGSERIAL PRIMARY KEY,
	user_id                   BIGINT NOT NULL REFERENCES users(id),
	name                      TEXT NOT NULL,
	company_name              TEXT NOT NULL DEFAULT '',
	business_category         TEXT NOT NULL,
	contact_email             TEXT NOT NULL DEFAULT '',
	contact_phone             TEXT NOT NULL DEFAULT '',
	status                    TEXT NOT NULL DEFAULT '',
	signed_date               DATE,
	estimated_monthly_revenue NUMERIC(10,2) NOT NULL DEFAULT 0,
	created_at                TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at                TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS prospects (
	id                  BIGSERIAL PRIMARY KEY,
	user_id             BIGINT NOT NULL REFERENCES users(id),
	name                TEXT NOT NULL,
	company_name        TEXT NOT NULL DEFAULT '',
	business_category   TEXT NOT NULL,
	contact_email       TEXT NOT NULL DEFAULT '',
	contact_phone       TEXT NOT NULL DEFAULT '',
	interest_level      TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL,
	next_follow_up_date DATE,
	notes               TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS content_items (
	id                 BIGSERIAL PRIMARY KEY,
	client_id          BIGINT NOT NULL REFERENCES clients(id),
	content_type       TEXT NOT NULL,
	title              TEXT NOT NULL DEFAULT '',
	description        TEXT NOT NULL DEFAULT '',
	instagram_post_url TEXT NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_clients_user_id ON clients (user_id);
CREATE INDEX IF NOT EXISTS idx_prospects_user_id ON prospects (user_id);
CREATE INDEX IF NOT EXISTS idx_content_items_client_id ON content_items (client_id);
`

// EnsureSchema creates the tables and indexes when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
