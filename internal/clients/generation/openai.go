package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIConfig contains configuration for the OpenAI-compatible client.
// Any endpoint speaking the chat completions protocol works through the
// base URL (OpenAI, OpenRouter, local gateways).
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	HTTPTimeout time.Duration
}

// Validate validates the OpenAIConfig and sets defaults if not provided.
func (cfg *OpenAIConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	errors.ValidateRequired("Model", cfg.Model, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	return nil
}

type openaiClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
}

// NewOpenAI creates a generation client speaking the chat completions protocol.
func NewOpenAI(cfg *OpenAIConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &openaiClient{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
	}, nil
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Model string `json:"model"`
}

func (c *openaiClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	messages := make([]chatMessage, 0, 2)
	if input.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: input.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: input.Prompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "generation call timed out")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach generation service")
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, respBody)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode response")
	}

	if len(chatResp.Choices) == 0 {
		return nil, errors.Unavailable("generation service returned no choices")
	}

	model := chatResp.Model
	if model == "" {
		model = c.model
	}

	slog.Debug("Generation call completed",
		"model", model,
		"status", resp.StatusCode,
	)

	return &GenerateOutput{
		Text:  strings.TrimSpace(chatResp.Choices[0].Message.Content),
		Model: model,
	}, nil
}

// statusError maps an HTTP status from the service to an error code the
// caller can act on.
func statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Unauthenticatedf("generation service rejected credentials (status %d): %s", status, msg)
	case status == http.StatusTooManyRequests:
		return errors.ResourceExhaustedf("generation service quota exceeded (status %d): %s", status, msg)
	default:
		return errors.Unavailablef("generation service error (status %d): %s", status, msg)
	}
}
