package router

import (
	"net/http"

	"mix-store/internal/handler"
	"mix-store/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Session *handler.SessionHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Auth    *handler.AuthHandler
	Order   *handler.OrderHandler
	Stylist *handler.StylistHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	h Handlers,
	tokens middleware.TokenParser,
	sessions middleware.SessionToucher,
	users middleware.UserLookup,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("POST /api/sessions", h.Session.Create)

	// Catalogue
	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/categories", h.Product.Categories)
	mux.HandleFunc("GET /api/products/featured", h.Product.Featured)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)

	// Admin panel
	admin := middleware.RequireAdmin(users, logger)
	mux.Handle("POST /api/admin/products", admin(http.HandlerFunc(h.Product.Create)))
	mux.Handle("POST /api/admin/products/description", admin(http.HandlerFunc(h.Product.GenerateDescription)))
	mux.Handle("PUT /api/admin/products/{id}", admin(http.HandlerFunc(h.Product.Replace)))
	mux.Handle("DELETE /api/admin/products/{id}", admin(http.HandlerFunc(h.Product.Delete)))

	// Cart
	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.Add)
	mux.HandleFunc("PATCH /api/cart/items/{cartId}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{cartId}", h.Cart.Remove)

	// Auth
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	// Checkout and orders
	mux.HandleFunc("GET /api/checkout", h.Order.CheckoutDefaults)
	mux.HandleFunc("POST /api/checkout", h.Order.Checkout)
	mux.HandleFunc("GET /api/orders", h.Order.History)
	mux.HandleFunc("POST /api/orders/sync", h.Order.Sync)

	// Stylist
	mux.HandleFunc("GET /api/stylist/messages", h.Stylist.Messages)
	mux.HandleFunc("POST /api/stylist/messages", h.Stylist.Send)
	mux.HandleFunc("DELETE /api/stylist/messages", h.Stylist.Reset)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var handler http.Handler = mux
	handler = middleware.Session(tokens, sessions, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
