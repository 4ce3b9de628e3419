package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"mix-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "Missing field", err: model.MissingFieldError("firstName"), expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeMissingField},
		{name: "Invalid size", err: model.ErrInvalidSize, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidSize},
		{name: "Invalid price", err: model.ErrInvalidPrice, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidPrice},
		{name: "Invalid sort", err: model.ErrInvalidSort, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidSort},
		{name: "Cart empty", err: model.ErrCartEmpty, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeCartEmpty},
		{name: "Invalid credentials", err: model.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedCode: model.ErrCodeInvalidCreds},
		{name: "Unauthorised", err: model.ErrUnauthorised, expectedStatus: http.StatusUnauthorized, expectedCode: model.ErrCodeUnauthorised},
		{name: "Forbidden", err: model.ErrForbidden, expectedStatus: http.StatusForbidden, expectedCode: model.ErrCodeForbidden},
		{name: "Product not found", err: model.ErrProductNotFound, expectedStatus: http.StatusNotFound, expectedCode: model.ErrCodeProductNotFound},
		{name: "Email taken", err: model.ErrEmailTaken, expectedStatus: http.StatusConflict, expectedCode: model.ErrCodeEmailTaken},
		{name: "Order submission", err: model.ErrOrderSubmission, expectedStatus: http.StatusBadGateway, expectedCode: model.ErrCodeOrderSubmission},
		{name: "Wrapped domain error", err: fmt.Errorf("load: %w", model.ErrProductNotFound), expectedStatus: http.StatusNotFound, expectedCode: model.ErrCodeProductNotFound},
		{name: "Unknown domain code", err: model.NewDomainError("SOMETHING_ELSE", "odd"), expectedStatus: http.StatusInternalServerError, expectedCode: "SOMETHING_ELSE"},
		{name: "Plain error", err: errors.New("redis: connection refused"), expectedStatus: http.StatusInternalServerError, expectedCode: model.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handleServiceError(w, tt.err, zerolog.Nop())

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
		})
	}
}

func TestHandleServiceError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()

	handleServiceError(w, errors.New("dial tcp 10.0.0.5:5432: refused"), zerolog.Nop())

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		data           interface{}
		expectedStatus int
		expectedBody   string
	}{
		{name: "Object", status: http.StatusCreated, data: model.SessionResponse{Token: "t"}, expectedStatus: http.StatusCreated},
		{name: "Empty list", status: http.StatusOK, data: []string{}, expectedStatus: http.StatusOK, expectedBody: "[]\n"},
		{name: "Unencodable value", status: http.StatusOK, data: map[string]interface{}{"bad": make(chan int)}, expectedStatus: http.StatusInternalServerError},
		{name: "NaN price", status: http.StatusOK, data: model.Product{ID: "p1", Price: math.NaN()}, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			writeJSON(w, tt.status, tt.data)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, model.ErrCodeInternalError, resp.Error)
				assert.Equal(t, "internal server error", resp.Message)
			} else {
				assert.True(t, json.Valid(w.Body.Bytes()))
			}
		})
	}
}

func TestSessionIDRequired(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)

	id, ok := sessionID(w, req, zerolog.Nop())

	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
