package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mix-store/internal/middleware"
	"mix-store/internal/model"

	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	model.ErrCodeInvalidJSON:     http.StatusBadRequest,
	model.ErrCodeMissingField:    http.StatusBadRequest,
	model.ErrCodeInvalidSize:     http.StatusBadRequest,
	model.ErrCodeInvalidPrice:    http.StatusBadRequest,
	model.ErrCodeInvalidSort:     http.StatusBadRequest,
	model.ErrCodeCartEmpty:       http.StatusBadRequest,
	model.ErrCodeInvalidCreds:    http.StatusUnauthorized,
	model.ErrCodeUnauthorised:    http.StatusUnauthorized,
	model.ErrCodeForbidden:       http.StatusForbidden,
	model.ErrCodeProductNotFound: http.StatusNotFound,
	model.ErrCodeEmailTaken:      http.StatusConflict,
	model.ErrCodeOrderSubmission: http.StatusBadGateway,
}

// internalErrorBody is sent when a response value cannot be encoded.
var internalErrorBody = []byte(`{"error":"` + model.ErrCodeInternalError + `","message":"internal server error"}` + "\n")

// writeJSON writes a JSON response with the given status code. The body is
// encoded before the header is sent, so an unencodable value becomes a 500.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body = internalErrorBody
	} else {
		body = append(body, '\n')
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// handleServiceError translates a service error into a response. Domain
// errors keep their code and message; anything else becomes a generic 500.
func handleServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusByCode[domainErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "internal server error",
	})
}

// decodeJSON decodes the request body into dst and reports INVALID_JSON on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// sessionID returns the session set by middleware.Session.
func sessionID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (string, bool) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "missing session token", logger)
	}
	return id, ok
}
