package repository

import (
	"context"
	"fmt"

	"mix-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Insert stores the record and fills its ID and CreatedAt.
func (r *orderRepository) Insert(ctx context.Context, record *model.OrderRecord) error {
	query := `
		INSERT INTO orders (first_name, last_name, email, address, city, zip_code, selected_product, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		record.FirstName,
		record.LastName,
		record.Email,
		record.Address,
		record.City,
		record.ZipCode,
		record.SelectedProduct,
		record.TotalAmount,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("email", record.Email).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", record.ID).
		Str("email", record.Email).
		Msg("order inserted successfully")

	return nil
}

// ListByEmail returns the records for an email, newest first.
func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]model.OrderRecord, error) {
	query := `
		SELECT id, first_name, last_name, email, address, city, zip_code,
		       selected_product, total_amount::float8 AS total_amount, created_at
		FROM orders
		WHERE email = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.OrderRecord])
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to scan order rows")
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	return records, nil
}
