package service

import (
	"context"
	"fmt"
	"time"

	"mix-store/internal/cart"
	"mix-store/internal/model"
	"mix-store/internal/repository"
	"mix-store/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	products repository.ProductRepository
	store    session.Store
	now      func() time.Time
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(products repository.ProductRepository, store session.Store, logger zerolog.Logger) CartService {
	return &cartService{
		products: products,
		store:    store,
		now:      time.Now,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// Add puts one unit of the product in the requested size into the cart.
func (s *cartService) Add(ctx context.Context, sessionID string, req *model.AddToCartRequest) (*model.CartResponse, error) {
	if req.ProductID == "" {
		return nil, model.MissingFieldError("productId")
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	if !product.HasSize(req.Size) {
		return nil, model.ErrInvalidSize
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := c.Add(*product, req.Size, s.now())

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("product_id", product.ID).
		Int("size", req.Size).
		Int("quantity", item.Quantity).
		Msg("added to cart")

	return toCartResponse(c), nil
}

// Remove drops one entry. Unknown cart IDs leave the cart unchanged.
func (s *cartService) Remove(ctx context.Context, sessionID, cartID string) (*model.CartResponse, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if c.Remove(cartID) {
		if err := s.save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}

	return toCartResponse(c), nil
}

// UpdateQuantity sets an entry's quantity. Quantities below one are ignored.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, cartID string, quantity int) (*model.CartResponse, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if c.UpdateQuantity(cartID, quantity) {
		if err := s.save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}

	return toCartResponse(c), nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	c := cart.New(nil)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

func (s *cartService) load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart.New(items), nil
}

func (s *cartService) save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if err := s.store.SaveCart(ctx, sessionID, c.Items()); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func toCartResponse(c *cart.Cart) *model.CartResponse {
	return &model.CartResponse{
		Items: c.Items(),
		Count: c.Count(),
		Total: c.Total(),
	}
}
