// Package generation is the location for the text-generation service clients.
// The service is treated as an opaque collaborator: one prompt in, free text
// out. Providers implement the same Client interface and are selected by
// configuration.
package generation

//go:generate mockgen -destination=mock/mock_client.go -package=generationmock github.com/KirkDiggler/dnd-character-creator/internal/clients/generation Client

import (
	"context"
)

// Client defines the interface for the external generation service
type Client interface {
	// Generate sends a prompt to the service and returns the raw text.
	// Returns errors.Unauthenticated for credential problems,
	// errors.ResourceExhausted for quota problems, and errors.Unavailable
	// for everything else that kept the call from completing.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput defines the input for a generation call
type GenerateInput struct {
	// System sets the role instruction for the service
	System string
	// Prompt is the user-facing request text
	Prompt string
}

// GenerateOutput defines the output of a generation call
type GenerateOutput struct {
	// Text is the raw response text, trimmed
	Text string
	// Model records which model actually answered
	Model string
}
