package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for the remote orders table. Rows are flat summaries;
// the full item snapshot lives only in the session order history.
const Schema = `
CREATE TABLE IF NOT EXISTS orders (
	id               BIGSERIAL PRIMARY KEY,
	first_name       TEXT NOT NULL,
	last_name        TEXT NOT NULL,
	email            TEXT NOT NULL,
	address          TEXT NOT NULL,
	city             TEXT NOT NULL,
	zip_code         TEXT NOT NULL,
	selected_product TEXT NOT NULL DEFAULT '',
	total_amount     NUMERIC(12,2) NOT NULL CHECK (total_amount >= 0),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_email_created_at ON orders (email, created_at DESC);
`

// EnsureSchema creates the orders table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply order store schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("order store schema ready")
	return nil
}
