package service

import (
	"context"
	"testing"
	"time"

	"mix-store/internal/model"
	"mix-store/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product model.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) SeedIfEmpty(ctx context.Context, products []model.Product) (bool, error) {
	args := m.Called(ctx, products)
	return args.Bool(0), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, record *model.OrderRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByEmail(ctx context.Context, email string) ([]model.OrderRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRecord), args.Error(1)
}

// MockDirectory is a mock implementation of auth.Directory.
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockDirectory) Create(ctx context.Context, user model.User, password string) (*model.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockDirectory) SeedDemoUsers(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockAssistant is a mock implementation of Assistant.
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) GenerateDescription(ctx context.Context, name, brand, keywords string) string {
	return m.Called(ctx, name, brand, keywords).String(0)
}

func (m *MockAssistant) Chat(ctx context.Context, history []model.ChatMessage, message string, products []model.Product) string {
	return m.Called(ctx, history, message, products).String(0)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.Order, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) CheckoutDefaults(ctx context.Context, sessionID string) (*model.CheckoutDefaults, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutDefaults), args.Error(1)
}

func (m *MockOrderService) History(ctx context.Context, sessionID string) ([]model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Sync(ctx context.Context, sessionID string) ([]model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// newTestStore returns a session store over an in-memory Redis.
func newTestStore(t *testing.T) (*miniredis.Miniredis, session.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, session.NewStore(client, time.Hour, zerolog.Nop())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testCatalogue() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Air Velocity Nitro", Brand: "Nike", Price: 180, Sizes: []int{8, 9, 10}, Category: "Running", Stock: 15},
		{ID: "p2", Name: "Restorative Hair Mask", Brand: "Olaplex", Price: 45, Sizes: []int{1}, Category: "Haircare", Stock: 40},
		{ID: "p3", Name: "Amber Glow Serum", Brand: "Mix", Price: 65, Sizes: []int{1}, Category: "Skincare", Stock: 25},
	}
}
