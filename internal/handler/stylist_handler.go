package handler

import (
	"net/http"

	"mix-store/internal/model"
	"mix-store/internal/service"

	"github.com/rs/zerolog"
)

// StylistHandler handles the stylist chat of a session.
type StylistHandler struct {
	service service.ChatService
	logger  zerolog.Logger
}

// NewStylistHandler creates a new stylist handler.
func NewStylistHandler(service service.ChatService, logger zerolog.Logger) *StylistHandler {
	return &StylistHandler{
		service: service,
		logger:  logger.With().Str("handler", "stylist").Logger(),
	}
}

// Messages handles GET /api/stylist/messages requests.
func (h *StylistHandler) Messages(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	messages, err := h.service.Messages(r.Context(), sid)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Send handles POST /api/stylist/messages requests.
func (h *StylistHandler) Send(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ChatRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	messages, err := h.service.Send(r.Context(), sid, req.Message)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Reset handles DELETE /api/stylist/messages requests.
func (h *StylistHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	messages, err := h.service.Reset(r.Context(), sid)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
