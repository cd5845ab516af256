package creation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-character-creator/internal/clients/generation"
	generationmock "github.com/KirkDiggler/dnd-character-creator/internal/clients/generation/mock"
	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-character-creator/internal/pkg/idgen"
)

var testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestOrchestrator(t *testing.T) (Service, *generationmock.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := generationmock.NewMockClient(ctrl)

	o, err := NewOrchestrator(&Config{
		GenerationClient: mockClient,
		IDGenerator:      idgen.NewSequential("char"),
		Clock:            &clock.Fixed{T: testTime},
	})
	require.NoError(t, err)

	return o, mockClient
}

func validRequest() *dnd5e.CharacterRequest {
	return &dnd5e.CharacterRequest{
		RaceID:      dnd5e.RaceElf,
		ClassID:     dnd5e.ClassRogue,
		AlignmentID: dnd5e.AlignmentChaoticNeutral,
		Level:       1,
		MethodID:    dnd5e.MethodStandardArray,
		Detail:      3,
	}
}

func TestNewOrchestrator(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewOrchestrator(nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("missing dependencies", func(t *testing.T) {
		_, err := NewOrchestrator(&Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GenerationClient")
		assert.Contains(t, err.Error(), "IDGenerator")
		assert.Contains(t, err.Error(), "Clock")
	})
}

func TestGenerateCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("parses sections from the response", func(t *testing.T) {
		o, mockClient := newTestOrchestrator(t)

		mockClient.EXPECT().
			Generate(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *generation.GenerateInput) (*generation.GenerateOutput, error) {
				assert.Equal(t, systemPrompt, input.System)
				assert.Contains(t, input.Prompt, "level 1 Elf Rogue")
				return &generation.GenerateOutput{Text: wellFormedResponse, Model: "gpt-4o-mini"}, nil
			})

		output, err := o.GenerateCharacter(ctx, &GenerateCharacterInput{Request: validRequest()})
		require.NoError(t, err)
		require.NotNil(t, output.Character)

		char := output.Character
		assert.Equal(t, "char_1", char.ID)
		assert.Equal(t, "Kaelith Moonshadow", char.Name)
		assert.Equal(t, dnd5e.RaceElf, char.RaceID)
		assert.Equal(t, dnd5e.ClassRogue, char.ClassID)
		assert.Equal(t, 1, char.Level)
		assert.Contains(t, char.Backstory, "Silverymoon")
		assert.Contains(t, char.Equipment, "thieves' tools")
		assert.Contains(t, char.Features, "Sneak Attack")
		assert.True(t, char.Parsed())
		assert.Equal(t, testTime.Unix(), char.CreatedAt)
		assert.Equal(t, "gpt-4o-mini", output.Model)

		// Scores came from the response, not local generation
		assert.Equal(t, 15, char.AbilityScores.Dexterity)
		assert.Equal(t, 8, char.AbilityScores.Strength)
	})

	t.Run("malformed response falls back to raw text", func(t *testing.T) {
		o, mockClient := newTestOrchestrator(t)

		raw := "A rogue walked into a tavern and the rest is history."
		mockClient.EXPECT().
			Generate(ctx, gomock.Any()).
			Return(&generation.GenerateOutput{Text: raw, Model: "gpt-4o-mini"}, nil)

		output, err := o.GenerateCharacter(ctx, &GenerateCharacterInput{Request: validRequest()})
		require.NoError(t, err)

		char := output.Character
		assert.False(t, char.Parsed())
		assert.Equal(t, raw, char.RawResponse)
		assert.Empty(t, char.Name)

		// Scores are generated locally when the response has none
		assert.Equal(t, 15, char.AbilityScores.Dexterity)
	})

	t.Run("missing scores are generated locally", func(t *testing.T) {
		o, mockClient := newTestOrchestrator(t)

		mockClient.EXPECT().
			Generate(ctx, gomock.Any()).
			Return(&generation.GenerateOutput{Text: "Name: Tess\nBackstory: A wanderer."}, nil)

		output, err := o.GenerateCharacter(ctx, &GenerateCharacterInput{Request: validRequest()})
		require.NoError(t, err)

		char := output.Character
		assert.True(t, char.Parsed())
		assert.Equal(t, "Tess", char.Name)
		assert.Equal(t, 15, char.AbilityScores.Dexterity)
		assert.Equal(t, 8, char.AbilityScores.Strength)
	})

	t.Run("generation errors propagate with their code", func(t *testing.T) {
		o, mockClient := newTestOrchestrator(t)

		mockClient.EXPECT().
			Generate(ctx, gomock.Any()).
			Return(nil, errors.Unauthenticated("invalid api key"))

		_, err := o.GenerateCharacter(ctx, &GenerateCharacterInput{Request: validRequest()})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthenticated(err))
	})

	t.Run("invalid request never reaches the client", func(t *testing.T) {
		o, _ := newTestOrchestrator(t)

		req := validRequest()
		req.Level = 99

		_, err := o.GenerateCharacter(ctx, &GenerateCharacterInput{Request: req})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("nil input", func(t *testing.T) {
		o, _ := newTestOrchestrator(t)

		_, err := o.GenerateCharacter(ctx, nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
