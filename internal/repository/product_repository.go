package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mix-store/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ProductsKey is the Redis key holding the catalogue as one JSON list.
const ProductsKey = "mix_products"

const maxTxRetries = 5

// productRepository implements the ProductRepository interface using Redis.
type productRepository struct {
	client redis.UniversalClient
	logger zerolog.Logger
}

// NewProductRepository creates a new Redis-backed product repository.
func NewProductRepository(client redis.UniversalClient, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		client: client,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll returns the catalogue in its stored order.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := readProducts(ctx, r.client)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read catalogue")
		return nil, err
	}
	return products, nil
}

// GetByID returns nil without error when the product does not exist.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	r.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, nil
}

// Save inserts the product or replaces the product with the same ID in place.
func (r *productRepository) Save(ctx context.Context, product model.Product) (bool, error) {
	var created bool

	err := r.update(ctx, func(products []model.Product) []model.Product {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = product
				created = false
				return products
			}
		}
		created = true
		return append(products, product)
	})
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to save product")
		return false, fmt.Errorf("failed to save product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID).
		Bool("created", created).
		Msg("product saved")

	return created, nil
}

// Delete removes the product and reports whether it existed.
func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool

	err := r.update(ctx, func(products []model.Product) []model.Product {
		deleted = false
		kept := products[:0]
		for _, p := range products {
			if p.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, p)
		}
		return kept
	})
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return deleted, nil
}

// SeedIfEmpty stores products only when no catalogue exists yet.
func (r *productRepository) SeedIfEmpty(ctx context.Context, products []model.Product) (bool, error) {
	if products == nil {
		products = []model.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return false, fmt.Errorf("failed to encode catalogue: %w", err)
	}

	seeded, err := r.client.SetNX(ctx, ProductsKey, data, 0).Result()
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to seed catalogue")
		return false, fmt.Errorf("failed to seed catalogue: %w", err)
	}

	r.logger.Info().
		Bool("seeded", seeded).
		Int("count", len(products)).
		Msg("catalogue seed checked")

	return seeded, nil
}

// update applies fn to the stored catalogue under an optimistic lock.
func (r *productRepository) update(ctx context.Context, fn func([]model.Product) []model.Product) error {
	txf := func(tx *redis.Tx) error {
		products, err := readProducts(ctx, tx)
		if err != nil {
			return err
		}

		data, err := json.Marshal(fn(products))
		if err != nil {
			return fmt.Errorf("failed to encode catalogue: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ProductsKey, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, ProductsKey)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		r.logger.Debug().Int("attempt", i+1).Msg("catalogue changed concurrently, retrying")
	}

	return fmt.Errorf("catalogue update conflicted %d times", maxTxRetries)
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// readProducts decodes the catalogue; a missing key is an empty catalogue.
func readProducts(ctx context.Context, client getter) ([]model.Product, error) {
	data, err := client.Get(ctx, ProductsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.Product{}, nil
		}
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}
