package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mix-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func greetingOnly() []model.ChatMessage {
	return []model.ChatMessage{{ID: "1", Role: model.ChatRoleModel, Text: "Hi!"}}
}

func TestStylistHandler_Messages(t *testing.T) {
	mockService := new(MockChatService)
	mockService.On("Messages", mock.Anything, testSessionID).Return(greetingOnly(), nil)
	handler := NewStylistHandler(mockService, zerolog.Nop())

	w := httptest.NewRecorder()
	handler.Messages(w, newRequest(http.MethodGet, "/api/stylist/messages", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, greetingOnly(), decodeBody[[]model.ChatMessage](t, w))
}

func TestStylistHandler_Send(t *testing.T) {
	conversation := append(greetingOnly(),
		model.ChatMessage{ID: "a", Role: model.ChatRoleUser, Text: "Running shoes?"},
		model.ChatMessage{ID: "b", Role: model.ChatRoleModel, Text: "Try the Nike Air Zoom."},
	)

	tests := []struct {
		name           string
		body           string
		expectService  bool
		mockReturn     []model.ChatMessage
		mockError      error
		expectedStatus int
	}{
		{name: "Reply", body: `{"message":"Running shoes?"}`, expectService: true, mockReturn: conversation, expectedStatus: http.StatusOK},
		{name: "Blank message", body: `{"message":"Running shoes?"}`, expectService: true, mockError: model.MissingFieldError("message"), expectedStatus: http.StatusBadRequest},
		{name: "Store failure", body: `{"message":"Running shoes?"}`, expectService: true, mockError: errors.New("redis down"), expectedStatus: http.StatusInternalServerError},
		{name: "Malformed body", body: `"hi"`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockChatService)
			if tt.expectService {
				mockService.On("Send", mock.Anything, testSessionID, "Running shoes?").Return(tt.mockReturn, tt.mockError)
			}
			handler := NewStylistHandler(mockService, zerolog.Nop())

			w := httptest.NewRecorder()
			handler.Send(w, newRequest(http.MethodPost, "/api/stylist/messages", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mockReturn != nil {
				assert.Len(t, decodeBody[[]model.ChatMessage](t, w), 3)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestStylistHandler_Reset(t *testing.T) {
	mockService := new(MockChatService)
	mockService.On("Reset", mock.Anything, testSessionID).Return(greetingOnly(), nil)
	handler := NewStylistHandler(mockService, zerolog.Nop())

	w := httptest.NewRecorder()
	handler.Reset(w, newRequest(http.MethodDelete, "/api/stylist/messages", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]model.ChatMessage](t, w), 1)
}
