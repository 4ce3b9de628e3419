package repository

import (
	"context"

	"mix-store/internal/model"
)

// ProductRepository defines the interface for catalogue access.
type ProductRepository interface {
	// GetAll returns the catalogue in its stored order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID returns nil without error when the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Save inserts the product or replaces the product with the same ID in place.
	// It reports whether a new product was added.
	Save(ctx context.Context, product model.Product) (bool, error)

	// Delete removes the product and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// SeedIfEmpty stores products only when no catalogue exists yet.
	SeedIfEmpty(ctx context.Context, products []model.Product) (bool, error)
}

// OrderRepository defines the interface for the remote order store.
type OrderRepository interface {
	// Insert stores the record and fills its ID and CreatedAt.
	Insert(ctx context.Context, record *model.OrderRecord) error

	// ListByEmail returns the records for an email, newest first.
	ListByEmail(ctx context.Context, email string) ([]model.OrderRecord, error)
}
