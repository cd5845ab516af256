package generation

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// GeminiConfig contains configuration for the Gemini client.
type GeminiConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Validate validates the GeminiConfig and sets defaults if not provided.
func (cfg *GeminiConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	return nil
}

type geminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// NewGemini creates a generation client backed by the Gemini API.
func NewGemini(ctx context.Context, cfg *GeminiConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	genClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create Gemini client")
	}

	return &geminiClient{
		client:    genClient,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

func (c *geminiClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.maxTokens),
	}
	if input.System != "" {
		config.SystemInstruction = genai.NewContentFromText(input.System, genai.RoleUser)
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(input.Prompt), config)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "generation call timed out")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "Gemini call failed")
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, errors.Unavailable("Gemini returned no candidates")
	}

	return &GenerateOutput{
		Text:  strings.TrimSpace(res.Candidates[0].Content.Parts[0].Text),
		Model: c.model,
	}, nil
}
