// Package config loads application configuration from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// Provider names for the generation service.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Store backends for saved characters.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config holds everything configurable through the environment. Flags may
// override individual fields after loading.
type Config struct {
	Provider string `env:"PROVIDER" envDefault:"openai"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	MaxTokens         int           `env:"MAX_TOKENS" envDefault:"2000"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s"`

	Store     string `env:"CHARACTER_STORE" envDefault:"file"`
	DataDir   string `env:"DATA_DIR" envDefault:"data/characters"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (when present) and the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enum fields and ranges.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("PROVIDER", c.Provider, []string{ProviderOpenAI, ProviderGemini}, vb)
	errors.ValidateEnum("CHARACTER_STORE", c.Store, []string{StoreFile, StoreRedis}, vb)
	if c.GenerationTimeout <= 0 {
		vb.InvalidField("GENERATION_TIMEOUT", "must be positive")
	}
	if c.MaxTokens <= 0 {
		vb.InvalidField("MAX_TOKENS", "must be positive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("LOG_LEVEL", err.Error())
	}

	return vb.Build()
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Model returns the model name for the configured provider.
func (c *Config) Model() string {
	if c.Provider == ProviderGemini {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

// ParseLogLevel converts a level name to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
}
