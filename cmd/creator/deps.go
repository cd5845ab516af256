package main

import (
	"context"

	"github.com/KirkDiggler/dnd-character-creator/internal/clients/generation"
	"github.com/KirkDiggler/dnd-character-creator/internal/config"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/orchestrators/creation"
	"github.com/KirkDiggler/dnd-character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-character-creator/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/dnd-character-creator/internal/redis"
	"github.com/KirkDiggler/dnd-character-creator/internal/repositories/character"
)

// newGenerationClient builds the provider client the config selects.
func newGenerationClient(ctx context.Context) (generation.Client, error) {
	if cfg.APIKey() == "" {
		return nil, errors.Unauthenticatedf(
			"no API key configured for provider %s (set %s)",
			cfg.Provider, apiKeyEnvVar())
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		return generation.NewGemini(ctx, &generation.GeminiConfig{
			APIKey:    cfg.GeminiAPIKey,
			Model:     cfg.GeminiModel,
			MaxTokens: cfg.MaxTokens,
		})
	default:
		return generation.NewOpenAI(&generation.OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			MaxTokens:   cfg.MaxTokens,
			HTTPTimeout: cfg.GenerationTimeout,
		})
	}
}

func apiKeyEnvVar() string {
	if cfg.Provider == config.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// newOrchestrator wires the creation service for the current config.
func newOrchestrator(ctx context.Context) (creation.Service, error) {
	client, err := newGenerationClient(ctx)
	if err != nil {
		return nil, err
	}

	return creation.NewOrchestrator(&creation.Config{
		GenerationClient: client,
		IDGenerator:      idgen.NewUUID("char"),
		Clock:            clock.New(),
	})
}

// newRepository builds the character store the config selects.
func newRepository() (character.Repository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		return character.NewRedis(&character.RedisConfig{Client: client})
	default:
		return character.NewFile(&character.FileConfig{DataDir: cfg.DataDir})
	}
}
