// Package creation implements the character creation orchestrator. It
// validates requests, builds prompts, calls the generation service, and
// turns the free-text response into a Character.
package creation

//go:generate mockgen -destination=mock/mock_service.go -package=creationmock github.com/KirkDiggler/dnd-character-creator/internal/orchestrators/creation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dnd-character-creator/internal/clients/generation"
	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-character-creator/internal/pkg/idgen"
)

// Service defines the interface for character creation operations
type Service interface {
	GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error)
}

// Config holds the dependencies for the creation orchestrator
type Config struct {
	GenerationClient generation.Client
	IDGenerator      idgen.Generator
	Clock            clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GenerationClient == nil {
		vb.RequiredField("GenerationClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	client generation.Client
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewOrchestrator creates a new creation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &orchestrator{
		client: cfg.GenerationClient,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// GenerateCharacter runs the full creation flow for a validated request.
func (o *orchestrator) GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("request cannot be nil")
	}
	if err := ValidateRequest(input.Request); err != nil {
		return nil, err
	}

	req := input.Request

	slog.Info("generating character",
		"race", req.RaceID,
		"class", req.ClassID,
		"alignment", req.AlignmentID,
		"level", req.Level,
		"method", req.MethodID,
		"detail", req.Detail,
	)

	out, err := o.client.Generate(ctx, &generation.GenerateInput{
		System: systemPrompt,
		Prompt: buildPrompt(req),
	})
	if err != nil {
		return nil, errors.Wrap(err, "generation request failed")
	}

	char := &dnd5e.Character{
		ID:          o.idGen.Generate(),
		RaceID:      req.RaceID,
		ClassID:     req.ClassID,
		AlignmentID: req.AlignmentID,
		Level:       req.Level,
		CreatedAt:   o.clock.Now().Unix(),
	}

	parsed := parseResponse(out.Text)
	if parsed.complete() {
		char.Name = parsed.Name
		char.Backstory = parsed.Backstory
		char.Traits = parsed.Traits
		char.Ideals = parsed.Ideals
		char.Bonds = parsed.Bonds
		char.Flaws = parsed.Flaws
		char.Equipment = parsed.Equipment
		char.Features = parsed.Features
		char.Spells = parsed.Spells
	} else {
		// Keep the full text rather than losing a response we paid for
		slog.Warn("response missing section markers, keeping raw text",
			"model", out.Model)
		char.RawResponse = out.Text
	}

	if parsed.complete() && parsed.hasAllScores() {
		char.AbilityScores = dnd5e.FromMap(parsed.Scores)
	} else {
		scores, err := generateAbilityScores(req.MethodID, req.ClassID)
		if err != nil {
			return nil, err
		}
		char.AbilityScores = scores
	}

	slog.Info("character generated",
		"character_id", char.ID,
		"name", char.Name,
		"parsed", char.Parsed(),
		"model", out.Model,
	)

	return &GenerateCharacterOutput{
		Character: char,
		Model:     out.Model,
	}, nil
}
