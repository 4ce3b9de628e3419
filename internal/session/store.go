// Package session persists per-session shopper state in Redis.
//
// Every piece of state lives under its own key, is read on demand and is
// rewritten in full on every change. All keys share one sliding TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mix-store/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Key prefixes, one per kind of session state.
const (
	cartPrefix   = "mix_cart:"
	userPrefix   = "mix_user:"
	ordersPrefix = "mix_orders:"
	chatPrefix   = "mix_chat:"
)

// Store defines the persisted state of a shopping session.
type Store interface {
	Cart(ctx context.Context, sessionID string) ([]model.CartItem, error)
	SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error

	// User returns nil when nobody is logged in.
	User(ctx context.Context, sessionID string) (*model.User, error)
	SaveUser(ctx context.Context, sessionID string, user *model.User) error
	ClearUser(ctx context.Context, sessionID string) error

	Orders(ctx context.Context, sessionID string) ([]model.Order, error)
	SaveOrders(ctx context.Context, sessionID string, orders []model.Order) error

	// Chat returns nil when no conversation has been stored yet.
	Chat(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
	SaveChat(ctx context.Context, sessionID string, messages []model.ChatMessage) error

	// Touch extends the TTL of every key the session owns.
	Touch(ctx context.Context, sessionID string) error
}

type redisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStore creates a Redis-backed session store.
func NewStore(client redis.UniversalClient, ttl time.Duration, logger zerolog.Logger) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "session-store").Logger(),
	}
}

func (s *redisStore) Cart(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	if _, err := s.load(ctx, cartPrefix+sessionID, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

func (s *redisStore) SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	return s.save(ctx, cartPrefix+sessionID, items)
}

func (s *redisStore) User(ctx context.Context, sessionID string) (*model.User, error) {
	var user model.User
	found, err := s.load(ctx, userPrefix+sessionID, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (s *redisStore) SaveUser(ctx context.Context, sessionID string, user *model.User) error {
	if user == nil {
		return s.ClearUser(ctx, sessionID)
	}
	return s.save(ctx, userPrefix+sessionID, user)
}

func (s *redisStore) ClearUser(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, userPrefix+sessionID).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear session user")
		return fmt.Errorf("failed to clear session user: %w", err)
	}
	return nil
}

func (s *redisStore) Orders(ctx context.Context, sessionID string) ([]model.Order, error) {
	var orders []model.Order
	if _, err := s.load(ctx, ordersPrefix+sessionID, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *redisStore) SaveOrders(ctx context.Context, sessionID string, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	return s.save(ctx, ordersPrefix+sessionID, orders)
}

func (s *redisStore) Chat(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if _, err := s.load(ctx, chatPrefix+sessionID, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *redisStore) SaveChat(ctx context.Context, sessionID string, messages []model.ChatMessage) error {
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return s.save(ctx, chatPrefix+sessionID, messages)
}

func (s *redisStore) Touch(ctx context.Context, sessionID string) error {
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, prefix := range []string{cartPrefix, userPrefix, ordersPrefix, chatPrefix} {
			pipe.Expire(ctx, prefix+sessionID, s.ttl)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to refresh session TTL")
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	return nil
}

// load decodes the value at key into dest and reports whether the key existed.
func (s *redisStore) load(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read session state")
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to decode session state")
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return true, nil
}

func (s *redisStore) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write session state")
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}
