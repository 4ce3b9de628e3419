package handler

import (
	"net/http"

	"mix-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenIssuer signs a session token for a session ID.
type TokenIssuer interface {
	Issue(sessionID string) (string, error)
}

// SessionHandler issues anonymous session tokens.
type SessionHandler struct {
	tokens TokenIssuer
	logger zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(tokens TokenIssuer, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		tokens: tokens,
		logger: logger.With().Str("handler", "session").Logger(),
	}
}

// Create handles POST /api/sessions requests.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()

	token, err := h.tokens.Issue(sessionID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue session token")
		handleServiceError(w, err, h.logger)
		return
	}

	h.logger.Debug().Str("session_id", sessionID).Msg("session created")

	writeJSON(w, http.StatusCreated, model.SessionResponse{Token: token})
}
