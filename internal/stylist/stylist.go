// Package stylist generates product copy and shopping advice with Gemini.
package stylist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mix-store/internal/model"

	"github.com/rs/zerolog"
)

// Canned replies used when the model is unavailable.
const (
	MissingKeyDescription = "API Key missing. Please configure."
	EmptyDescription      = "No description generated."
	DescriptionFallback   = "Could not generate description at this time."
	OfflineReply          = "I'm offline right now, but I think you'd love our new collection!"
	ChatFallback          = "I'm having trouble connecting to the store database right now. Try again later!"
)

// Greeting opens every stylist conversation.
const Greeting = "Hey! I'm Mix, your personal lifestyle curator. Looking for the perfect sneaker or skincare routine?"

const descriptionPrompt = `Write a compelling, short e-commerce product description (approx 2-3 sentences) for a product named "%s" by "%s". Keywords to include: %s. Focus on benefits, texture, and lifestyle appeal.`

const chatPrompt = `You are "Mix", a helpful and trendy AI Lifestyle Stylist for Mix Brands.
You help customers find the perfect items from our curated inventory of sneakers, skincare, and lifestyle goods.
Be concise, friendly, and knowledgeable about both fashion and beauty.

Here is our current inventory:
%s

Only recommend products from this list. If asked about other brands/products, politely steer them to our inventory.`

// Stylist wraps a Generator with the store's prompts and fallbacks.
// A nil generator means no API key is configured.
type Stylist struct {
	gen    Generator
	logger zerolog.Logger
}

// New creates a Stylist. Pass a nil gen to run offline.
func New(gen Generator, logger zerolog.Logger) *Stylist {
	return &Stylist{
		gen:    gen,
		logger: logger.With().Str("component", "stylist").Logger(),
	}
}

// Online reports whether a generator is configured.
func (s *Stylist) Online() bool {
	return s.gen != nil
}

// GenerateDescription writes marketing copy for a product. It never fails;
// errors turn into a fallback sentence.
func (s *Stylist) GenerateDescription(ctx context.Context, name, brand, keywords string) string {
	if s.gen == nil {
		return MissingKeyDescription
	}

	text, err := s.gen.Generate(ctx, Prompt{Message: fmt.Sprintf(descriptionPrompt, name, brand, keywords)})
	if err != nil {
		if errors.Is(err, ErrNoContent) {
			return EmptyDescription
		}
		s.logger.Error().Err(err).Str("product", name).Msg("description generation failed")
		return DescriptionFallback
	}

	return text
}

// Chat answers message given the prior conversation and current inventory.
func (s *Stylist) Chat(ctx context.Context, history []model.ChatMessage, message string, products []model.Product) string {
	if s.gen == nil {
		return OfflineReply
	}

	text, err := s.gen.Generate(ctx, Prompt{
		System:  SystemPrompt(products),
		History: history,
		Message: message,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("history", len(history)).Msg("stylist chat failed")
		return ChatFallback
	}

	return text
}

// SystemPrompt builds the stylist persona with the inventory listed.
func SystemPrompt(products []model.Product) string {
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = fmt.Sprintf("- %s (%s): $%s, Category: %s", p.Name, p.Brand, formatPrice(p.Price), p.Category)
	}
	return fmt.Sprintf(chatPrompt, strings.Join(lines, "\n"))
}

// formatPrice prints whole prices without decimals, like 180 rather than 180.00.
func formatPrice(price float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", price), "0"), ".")
}
