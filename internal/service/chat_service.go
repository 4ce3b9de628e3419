package service

import (
	"context"
	"fmt"
	"strings"

	"mix-store/internal/model"
	"mix-store/internal/repository"
	"mix-store/internal/session"
	"mix-store/internal/stylist"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const greetingID = "1"

// chatService implements ChatService.
type chatService struct {
	assistant Assistant
	products  repository.ProductRepository
	store     session.Store
	logger    zerolog.Logger
}

// NewChatService creates a new stylist chat service.
func NewChatService(assistant Assistant, products repository.ProductRepository, store session.Store, logger zerolog.Logger) ChatService {
	return &chatService{
		assistant: assistant,
		products:  products,
		store:     store,
		logger:    logger.With().Str("service", "chat").Logger(),
	}
}

// Messages returns the conversation, starting with the greeting.
func (s *chatService) Messages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	messages, err := s.store.Chat(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat: %w", err)
	}
	if len(messages) == 0 {
		return greeting(), nil
	}
	return messages, nil
}

// Send appends the user's message and the stylist's reply.
func (s *chatService) Send(ctx context.Context, sessionID, message string) ([]model.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, model.MissingFieldError("message")
	}

	history, err := s.Messages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	reply := s.assistant.Chat(ctx, history, message, products)

	messages := append(history,
		model.ChatMessage{ID: uuid.NewString(), Role: model.ChatRoleUser, Text: message},
		model.ChatMessage{ID: uuid.NewString(), Role: model.ChatRoleModel, Text: reply},
	)

	if err := s.store.SaveChat(ctx, sessionID, messages); err != nil {
		return nil, fmt.Errorf("failed to save chat: %w", err)
	}

	s.logger.Debug().Int("messages", len(messages)).Msg("stylist replied")

	return messages, nil
}

// Reset restores the conversation to the greeting.
func (s *chatService) Reset(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	messages := greeting()
	if err := s.store.SaveChat(ctx, sessionID, messages); err != nil {
		return nil, fmt.Errorf("failed to reset chat: %w", err)
	}
	return messages, nil
}

func greeting() []model.ChatMessage {
	return []model.ChatMessage{{ID: greetingID, Role: model.ChatRoleModel, Text: stylist.Greeting}}
}
