package service

import (
	"context"

	"mix-store/internal/catalog"
	"mix-store/internal/model"
)

// ProductService defines catalogue operations. Mutations are admin-only;
// the router enforces that before they are called.
type ProductService interface {
	// List returns the catalogue filtered by category and sorted by price.
	List(ctx context.Context, query catalog.Query) ([]model.Product, error)

	// Categories returns "All" followed by every category in catalogue order.
	Categories(ctx context.Context) ([]string, error)

	// Featured returns up to three featured products in catalogue order.
	Featured(ctx context.Context) ([]model.Product, error)

	// GetByID returns model.ErrProductNotFound for unknown IDs.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a product, filling defaults for omitted fields.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Replace overwrites an existing product as a whole.
	Replace(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error

	// GenerateDescription asks the stylist for marketing copy.
	GenerateDescription(ctx context.Context, req *model.DescriptionRequest) (*model.DescriptionResponse, error)
}

// CartService defines operations on a session's cart.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*model.CartResponse, error)
	Add(ctx context.Context, sessionID string, req *model.AddToCartRequest) (*model.CartResponse, error)
	Remove(ctx context.Context, sessionID, cartID string) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID, cartID string, quantity int) (*model.CartResponse, error)
	Clear(ctx context.Context, sessionID string) (*model.CartResponse, error)
}

// UserService defines login state for a session.
type UserService interface {
	Login(ctx context.Context, sessionID string, req *model.LoginRequest) (*model.User, error)
	Signup(ctx context.Context, sessionID string, req *model.SignupRequest) (*model.User, error)
	Logout(ctx context.Context, sessionID string) error

	// Current returns model.ErrUnauthorised when nobody is logged in.
	Current(ctx context.Context, sessionID string) (*model.User, error)
}

// OrderService defines checkout and order history operations.
type OrderService interface {
	Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.Order, error)
	CheckoutDefaults(ctx context.Context, sessionID string) (*model.CheckoutDefaults, error)
	History(ctx context.Context, sessionID string) ([]model.Order, error)

	// Sync merges the remote order store into the session's history.
	Sync(ctx context.Context, sessionID string) ([]model.Order, error)
}

// ChatService defines the stylist conversation of a session.
type ChatService interface {
	Messages(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
	Send(ctx context.Context, sessionID, message string) ([]model.ChatMessage, error)
	Reset(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
}

// Assistant is the generative-text dependency of the services.
type Assistant interface {
	GenerateDescription(ctx context.Context, name, brand, keywords string) string
	Chat(ctx context.Context, history []model.ChatMessage, message string, products []model.Product) string
}
