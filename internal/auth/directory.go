package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mix-store/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// UsersKey is the Redis hash of accounts, keyed by normalised email.
const UsersKey = "mix_users"

// DemoPassword is the password of every built-in demo account.
const DemoPassword = "password123"

// DemoUsers returns the built-in accounts, without password hashes.
func DemoUsers() []model.User {
	return []model.User{
		{ID: "u1", Name: "Admin User", Email: "admin@mixbrands.com", Role: model.RoleAdmin},
		{ID: "u2", Name: "John Doe", Email: "john@example.com", Role: model.RoleCustomer},
	}
}

// Directory stores storefront accounts.
type Directory interface {
	// Authenticate returns the user whose email and password match.
	Authenticate(ctx context.Context, email, password string) (*model.User, error)

	// Create adds a new account. It fails with model.ErrEmailTaken if the email is in use.
	Create(ctx context.Context, user model.User, password string) (*model.User, error)

	// SeedDemoUsers adds the demo accounts that are not yet present.
	SeedDemoUsers(ctx context.Context) error
}

// account is the stored form of a user, including the password hash.
type account struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         model.Role `json:"role"`
	PasswordHash string     `json:"passwordHash"`
}

func (a account) user() *model.User {
	return &model.User{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role, PasswordHash: a.PasswordHash}
}

type redisDirectory struct {
	client redis.UniversalClient
	logger zerolog.Logger
}

// NewDirectory creates a Redis-backed account directory.
func NewDirectory(client redis.UniversalClient, logger zerolog.Logger) Directory {
	return &redisDirectory{
		client: client,
		logger: logger.With().Str("component", "directory").Logger(),
	}
}

// NormaliseEmail trims and lower-cases an email for lookup.
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *redisDirectory) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	data, err := d.client.HGet(ctx, UsersKey, NormaliseEmail(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrInvalidCredentials
		}
		d.logger.Error().Err(err).Msg("failed to look up account")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	var acc account
	if err := json.Unmarshal(data, &acc); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}

	ok, err := VerifyPassword(password, acc.PasswordHash)
	if err != nil {
		d.logger.Error().Err(err).Str("user_id", acc.ID).Msg("stored password hash is unreadable")
		return nil, model.ErrInvalidCredentials
	}
	if !ok {
		return nil, model.ErrInvalidCredentials
	}

	return acc.user(), nil
}

func (d *redisDirectory) Create(ctx context.Context, user model.User, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	acc := account{
		ID:           user.ID,
		Name:         user.Name,
		Email:        strings.TrimSpace(user.Email),
		Role:         user.Role,
		PasswordHash: hash,
	}

	data, err := json.Marshal(acc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode account: %w", err)
	}

	added, err := d.client.HSetNX(ctx, UsersKey, NormaliseEmail(acc.Email), data).Result()
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to store account")
		return nil, fmt.Errorf("failed to store account: %w", err)
	}
	if !added {
		return nil, model.ErrEmailTaken
	}

	d.logger.Info().Str("user_id", acc.ID).Str("role", string(acc.Role)).Msg("account created")

	return acc.user(), nil
}

func (d *redisDirectory) SeedDemoUsers(ctx context.Context) error {
	for _, u := range DemoUsers() {
		_, err := d.Create(ctx, u, DemoPassword)
		if err != nil && !errors.Is(err, model.ErrEmailTaken) {
			return fmt.Errorf("failed to seed demo user %s: %w", u.ID, err)
		}
	}
	return nil
}
