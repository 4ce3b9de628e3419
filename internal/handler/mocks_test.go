package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"mix-store/internal/catalog"
	"mix-store/internal/middleware"
	"mix-store/internal/model"

	"github.com/stretchr/testify/mock"
)

const testSessionID = "session-1"

// newRequest builds a request carrying testSessionID, as middleware.Session would.
func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithSessionID(req.Context(), testSessionID))
}

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, query catalog.Query) ([]model.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductService) Featured(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Replace(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) GenerateDescription(ctx context.Context, req *model.DescriptionRequest) (*model.DescriptionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DescriptionResponse), args.Error(1)
}

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) cart(args mock.Arguments) (*model.CartResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, sessionID))
}

func (m *MockCartService) Add(ctx context.Context, sessionID string, req *model.AddToCartRequest) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, sessionID, req))
}

func (m *MockCartService) Remove(ctx context.Context, sessionID, cartID string) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, sessionID, cartID))
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID, cartID string, quantity int) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, sessionID, cartID, quantity))
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, sessionID))
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, sessionID string, req *model.LoginRequest) (*model.User, error) {
	return m.user(m.Called(ctx, sessionID, req))
}

func (m *MockUserService) Signup(ctx context.Context, sessionID string, req *model.SignupRequest) (*model.User, error) {
	return m.user(m.Called(ctx, sessionID, req))
}

func (m *MockUserService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockUserService) Current(ctx context.Context, sessionID string) (*model.User, error) {
	return m.user(m.Called(ctx, sessionID))
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) orders(args mock.Arguments) ([]model.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
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
	return m.orders(m.Called(ctx, sessionID))
}

func (m *MockOrderService) Sync(ctx context.Context, sessionID string) ([]model.Order, error) {
	return m.orders(m.Called(ctx, sessionID))
}

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) messages(args mock.Arguments) ([]model.ChatMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockChatService) Messages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	return m.messages(m.Called(ctx, sessionID))
}

func (m *MockChatService) Send(ctx context.Context, sessionID, message string) ([]model.ChatMessage, error) {
	return m.messages(m.Called(ctx, sessionID, message))
}

func (m *MockChatService) Reset(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	return m.messages(m.Called(ctx, sessionID))
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(sessionID string) (string, error) {
	args := m.Called(sessionID)
	return args.String(0), args.Error(1)
}
