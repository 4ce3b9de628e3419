package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mix-store/internal/model"

	"github.com/rs/zerolog"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// TokenParser verifies a session token and returns its session ID.
type TokenParser interface {
	Parse(token string) (string, error)
}

// SessionToucher extends the lifetime of a session's stored state.
type SessionToucher interface {
	Touch(ctx context.Context, sessionID string) error
}

// UserLookup returns the user logged in on a session.
type UserLookup interface {
	Current(ctx context.Context, sessionID string) (*model.User, error)
}

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionID returns the session ID stored by the Session middleware.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// Session requires a valid bearer token on /api/ routes, except for
// issuing a new session. The token's session ID is put in the request context.
func Session(parser TokenParser, toucher SessionToucher, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api/") ||
				(r.Method == http.MethodPost && r.URL.Path == "/api/sessions") {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				logger.Warn().Str("path", r.URL.Path).Msg("missing session token")
				writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "missing session token")
				return
			}

			sessionID, err := parser.Parse(token)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid session token")
				writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "invalid session token")
				return
			}

			if err := toucher.Touch(r.Context(), sessionID); err != nil {
				logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to refresh session")
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}

// RequireAdmin rejects requests whose session user is not an admin.
// It must run inside Session.
func RequireAdmin(users UserLookup, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := SessionID(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, model.ErrUnauthorised.Message)
				return
			}

			user, err := users.Current(r.Context(), sessionID)
			switch {
			case errors.Is(err, model.ErrUnauthorised):
				writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, model.ErrUnauthorised.Message)
				return
			case err != nil:
				logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load session user")
				writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error")
				return
			case !user.IsAdmin():
				logger.Warn().Str("user_id", user.ID).Str("path", r.URL.Path).Msg("admin access denied")
				writeError(w, http.StatusForbidden, model.ErrCodeForbidden, model.ErrForbidden.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
