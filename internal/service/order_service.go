package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mix-store/internal/cart"
	"mix-store/internal/model"
	"mix-store/internal/repository"
	"mix-store/internal/session"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	store     session.Store
	now       func() time.Time
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, store session.Store, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		store:     store,
		now:       time.Now,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Checkout submits the cart to the remote order store and, once that
// succeeds, records the order locally and empties the cart.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.Order, error) {
	user, c, err := s.checkoutState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	record := &model.OrderRecord{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           user.Email,
		Address:         req.Address.Street,
		City:            req.Address.City,
		ZipCode:         req.Address.Zip,
		SelectedProduct: c.Summary(),
		TotalAmount:     c.Total(),
	}

	if err := s.orderRepo.Insert(ctx, record); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Float64("total", record.TotalAmount).
			Msg("order submission failed")
		return nil, model.ErrOrderSubmission
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	address := req.Address
	order := model.Order{
		ID:              strconv.FormatInt(record.ID, 10),
		UserID:          user.ID,
		Items:           c.Items(),
		Total:           record.TotalAmount,
		Status:          model.OrderStatusPending,
		Date:            formatDate(createdAt),
		ShippingAddress: &address,
	}

	orders, err := s.store.Orders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	if err := s.store.SaveOrders(ctx, sessionID, append([]model.Order{order}, orders...)); err != nil {
		return nil, fmt.Errorf("failed to save order history: %w", err)
	}

	if err := s.store.SaveCart(ctx, sessionID, nil); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", user.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed")

	return &order, nil
}

// CheckoutDefaults splits the user's name into first and last name.
func (s *orderService) CheckoutDefaults(ctx context.Context, sessionID string) (*model.CheckoutDefaults, error) {
	user, c, err := s.checkoutState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	first, last := splitName(user.Name)

	return &model.CheckoutDefaults{
		FirstName: first,
		LastName:  last,
		Items:     c.Count(),
		Total:     c.Total(),
	}, nil
}

// History returns the logged-in user's orders. The session may hold orders
// of other users who logged in earlier; those are never returned.
func (s *orderService) History(ctx context.Context, sessionID string) ([]model.Order, error) {
	user, err := s.currentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orders, err := s.store.Orders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	return ordersOf(orders, user.ID), nil
}

// Sync fetches the user's remote orders and merges them into the session's
// history, then returns the user's orders. When the remote store fails or has
// nothing, the stored history is left unchanged.
func (s *orderService) Sync(ctx context.Context, sessionID string) ([]model.Order, error) {
	user, err := s.currentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	local, err := s.store.Orders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	records, err := s.orderRepo.ListByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("could not fetch remote orders")
		return ordersOf(local, user.ID), nil
	}
	if len(records) == 0 {
		return ordersOf(local, user.ID), nil
	}

	remote := make([]model.Order, len(records))
	for i, r := range records {
		remote[i] = RecordToOrder(r, user.ID)
	}

	merged := MergeHistory(local, remote)
	if err := s.store.SaveOrders(ctx, sessionID, merged); err != nil {
		return nil, fmt.Errorf("failed to save order history: %w", err)
	}

	mine := ordersOf(merged, user.ID)

	s.logger.Debug().
		Str("user_id", user.ID).
		Int("remote", len(remote)).
		Int("total", len(mine)).
		Msg("order history synced")

	return mine, nil
}

func (s *orderService) currentUser(ctx context.Context, sessionID string) (*model.User, error) {
	user, err := s.store.User(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUnauthorised
	}
	return user, nil
}

// ordersOf keeps the orders placed by userID, preserving their order.
func ordersOf(orders []model.Order, userID string) []model.Order {
	mine := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	return mine
}

// checkoutState returns the logged-in user and a non-empty cart.
func (s *orderService) checkoutState(ctx context.Context, sessionID string) (*model.User, *cart.Cart, error) {
	user, err := s.currentUser(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, nil, model.ErrCartEmpty
	}

	return user, cart.New(items), nil
}

func validateCheckoutRequest(req *model.CheckoutRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"address.street", req.Address.Street},
		{"address.city", req.Address.City},
		{"address.zip", req.Address.Zip},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return model.MissingFieldError(r.field)
		}
	}
	return nil
}

// splitName treats the first word as the first name and the rest as the last name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
