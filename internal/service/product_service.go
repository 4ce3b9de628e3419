package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mix-store/internal/catalog"
	"mix-store/internal/model"
	"mix-store/internal/repository"

	"github.com/rs/zerolog"
)

// Defaults applied to admin-created products.
const (
	defaultBrand       = "Generic"
	defaultCategory    = "Lifestyle"
	defaultDescription = "No description"
	defaultStock       = 10
	placeholderImage   = "https://picsum.photos/800/800?random=%d"
)

var defaultSizes = []int{8, 9, 10, 11}

// productService implements ProductService.
type productService struct {
	repo      repository.ProductRepository
	assistant Assistant
	now       func() time.Time
	logger    zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, assistant Assistant, logger zerolog.Logger) ProductService {
	return &productService{
		repo:      repo,
		assistant: assistant,
		now:       time.Now,
		logger:    logger.With().Str("service", "product").Logger(),
	}
}

// List returns the catalogue filtered by category and sorted by price.
func (s *productService) List(ctx context.Context, query catalog.Query) ([]model.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := catalog.Apply(products, query)

	s.logger.Debug().
		Str("category", query.Category).
		Str("sort", string(query.Sort)).
		Int("count", len(result)).
		Msg("products listed")

	return result, nil
}

// Categories returns "All" followed by every category in catalogue order.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return catalog.Categories(products), nil
}

func (s *productService) Featured(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return catalog.Featured(products), nil
}

// GetByID returns model.ErrProductNotFound for unknown IDs.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Create adds a product, filling defaults for omitted fields.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	product := buildProduct(fmt.Sprintf("p%d", now.UnixMilli()), req, defaultStock, now)

	if _, err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", product.Category).
		Msg("product created")

	return &product, nil
}

// Replace overwrites an existing product as a whole. Omitted stock keeps the current stock.
func (s *productService) Replace(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product := buildProduct(id, req, existing.Stock, s.now())
	if len(req.Images) == 0 {
		product.Images = existing.Images
	}

	if _, err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to replace product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product replaced")

	return &product, nil
}

// Delete removes a product from the catalogue.
func (s *productService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// GenerateDescription asks the stylist for marketing copy. Name and brand are required.
func (s *productService) GenerateDescription(ctx context.Context, req *model.DescriptionRequest) (*model.DescriptionResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.MissingFieldError("name")
	}
	if strings.TrimSpace(req.Brand) == "" {
		return nil, model.MissingFieldError("brand")
	}

	text := s.assistant.GenerateDescription(ctx, req.Name, req.Brand, req.Keywords)
	return &model.DescriptionResponse{Description: text}, nil
}

func validateProductRequest(req *model.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return model.MissingFieldError("name")
	}
	if req.Price <= 0 {
		return model.ErrInvalidPrice
	}
	return nil
}

// buildProduct applies the admin form defaults to req.
func buildProduct(id string, req *model.ProductRequest, stock int, now time.Time) model.Product {
	product := model.Product{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Brand:         orDefault(req.Brand, defaultBrand),
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Description:   orDefault(req.Description, defaultDescription),
		Images:        req.Images,
		Sizes:         req.Sizes,
		Category:      orDefault(req.Category, defaultCategory),
		Stock:         stock,
		Featured:      req.Featured,
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if len(product.Sizes) == 0 {
		product.Sizes = append([]int(nil), defaultSizes...)
	}
	if len(product.Images) == 0 {
		product.Images = []string{fmt.Sprintf(placeholderImage, now.UnixMilli())}
	}

	return product
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
