package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mix-store/internal/config"
	"mix-store/internal/model"

	"github.com/rs/zerolog"
)

// ErrNoContent is returned when the model answers without any text.
var ErrNoContent = errors.New("no text content in response")

// Prompt is a single generateContent call.
type Prompt struct {
	System  string
	History []model.ChatMessage
	Message string
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a Gemini client from cfg.
func NewClient(cfg config.StylistConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With().Str("component", "gemini").Logger(),
	}
}

// Generate sends the prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt Prompt) (string, error) {
	reqBody := generateRequest{Contents: toContents(prompt.History, prompt.Message)}
	if prompt.System != "" {
		reqBody.SystemInstruction = &systemInstruction{Parts: []part{{Text: prompt.System}}}
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("gemini request failed")
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := decodeAPIError(resp.StatusCode, body)
		c.logger.Error().
			Err(apiErr).
			Int("status_code", resp.StatusCode).
			Str("model", c.model).
			Msg("gemini returned an error")
		return "", apiErr
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Candidates) == 0 {
		return "", ErrNoContent
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if text.Len() == 0 {
		return "", ErrNoContent
	}

	event := c.logger.Debug().
		Str("model", c.model).
		Dur("duration", time.Since(start)).
		Int("response_length", text.Len())
	if parsed.UsageMetadata != nil {
		event = event.Int("total_tokens", parsed.UsageMetadata.TotalTokenCount)
	}
	event.Msg("gemini response received")

	return text.String(), nil
}

// toContents converts prior chat turns plus the new message into request contents.
func toContents(history []model.ChatMessage, message string) []content {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.Role == model.ChatRoleModel {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Text}}})
	}
	return append(contents, content{Role: "user", Parts: []part{{Text: message}}})
}

func decodeAPIError(status int, body []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("gemini API error (%d %s): %s", status, apiErr.Error.Status, apiErr.Error.Message)
	}
	return fmt.Errorf("gemini API error (%d): %s", status, strings.TrimSpace(string(body)))
}
