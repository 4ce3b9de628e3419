package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mix-store/internal/auth"
	"mix-store/internal/model"
	"mix-store/internal/session"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	directory auth.Directory
	store     session.Store
	orders    OrderService
	now       func() time.Time
	logger    zerolog.Logger
}

// NewUserService creates a new user service. Every login or signup triggers
// an order history sync through orders.
func NewUserService(directory auth.Directory, store session.Store, orders OrderService, logger zerolog.Logger) UserService {
	return &userService{
		directory: directory,
		store:     store,
		orders:    orders,
		now:       time.Now,
		logger:    logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) Login(ctx context.Context, sessionID string, req *model.LoginRequest) (*model.User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, model.MissingFieldError("email")
	}
	if req.Password == "" {
		return nil, model.MissingFieldError("password")
	}

	user, err := s.directory.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login failed")
		return nil, err
	}

	if err := s.setUser(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}

func (s *userService) Signup(ctx context.Context, sessionID string, req *model.SignupRequest) (*model.User, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, model.MissingFieldError("name")
	case strings.TrimSpace(req.Email) == "":
		return nil, model.MissingFieldError("email")
	case req.Password == "":
		return nil, model.MissingFieldError("password")
	}

	user, err := s.directory.Create(ctx, model.User{
		ID:    fmt.Sprintf("u%d", s.now().UnixMilli()),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Role:  model.RoleCustomer,
	}, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.setUser(ctx, sessionID, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed up")
	return user, nil
}

// Logout forgets the session's user. Cart and order history are kept.
func (s *userService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.ClearUser(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

func (s *userService) Current(ctx context.Context, sessionID string) (*model.User, error) {
	user, err := s.store.User(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUnauthorised
	}
	return user, nil
}

// setUser stores the user in the session and refreshes the order history.
// A failed refresh does not undo the login.
func (s *userService) setUser(ctx context.Context, sessionID string, user *model.User) error {
	if err := s.store.SaveUser(ctx, sessionID, user); err != nil {
		return fmt.Errorf("failed to store session user: %w", err)
	}

	if _, err := s.orders.Sync(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("order history sync failed")
	}

	return nil
}
