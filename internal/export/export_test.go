package export_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/export"
)

func testCharacter() *dnd5e.Character {
	return &dnd5e.Character{
		ID:          "char_001",
		Name:        "Kaelith Moonshadow",
		RaceID:      dnd5e.RaceElf,
		ClassID:     dnd5e.ClassRogue,
		AlignmentID: dnd5e.AlignmentChaoticNeutral,
		Level:       1,
		Backstory:   "Grew up in the shadowed alleys of Silverymoon.",
		Traits:      "Quick-witted and quicker-fingered.",
		Ideals:      "Freedom above all.",
		Bonds:       "Searches for her mother's brooch.",
		Flaws:       "Cannot resist a locked box.",
		Equipment:   "Two daggers, leather armor, thieves' tools.",
		Features:    "Darkvision, Sneak Attack, Thieves' Cant.",
		AbilityScores: dnd5e.AbilityScores{
			Strength: 8, Dexterity: 15, Constitution: 13,
			Intelligence: 12, Wisdom: 10, Charisma: 14,
		},
		CreatedAt: 100,
	}
}

func TestRenderText(t *testing.T) {
	out, err := export.Render(testCharacter(), export.FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "Kaelith Moonshadow")
	assert.Contains(t, out, "Level 1 Elf Rogue, Chaotic Neutral")
	assert.Contains(t, out, "Backstory")
	assert.Contains(t, out, "Silverymoon")

	// Scores carry their modifiers
	assert.Contains(t, out, "Dexterity     15 (+2)")
	assert.Contains(t, out, "Strength       8 (-1)")
	assert.Contains(t, out, "Wisdom        10 (+0)")

	// No spells section for a character without spells
	assert.NotContains(t, out, "Spells")
}

func TestRenderText_DefaultsToText(t *testing.T) {
	char := testCharacter()

	explicit, err := export.Render(char, export.FormatText)
	require.NoError(t, err)
	blank, err := export.Render(char, "")
	require.NoError(t, err)

	assert.Equal(t, explicit, blank)
}

func TestRenderMarkdown(t *testing.T) {
	char := testCharacter()
	char.Spells = "Favors Magic Missile."

	out, err := export.Render(char, export.FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# Kaelith Moonshadow")
	assert.Contains(t, out, "## Ability Scores")
	assert.Contains(t, out, "| Dexterity | 15 | +2 |")
	assert.Contains(t, out, "## Equipment")
	assert.Contains(t, out, "## Features")
	assert.Contains(t, out, "## Spells")

	// "md" is accepted as an alias
	alias, err := export.Render(char, "md")
	require.NoError(t, err)
	assert.Equal(t, out, alias)
}

func TestRenderJSON(t *testing.T) {
	out, err := export.Render(testCharacter(), export.FormatJSON)
	require.NoError(t, err)

	var decoded dnd5e.Character
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Kaelith Moonshadow", decoded.Name)
	assert.Equal(t, 15, decoded.AbilityScores.Dexterity)
}

func TestRenderRawFallback(t *testing.T) {
	char := testCharacter()
	char.Name = ""
	char.Backstory = ""
	char.RawResponse = "A rogue walked into a tavern and the rest is history."

	for _, format := range []string{export.FormatText, export.FormatMarkdown} {
		out, err := export.Render(char, format)
		require.NoError(t, err)
		assert.Contains(t, out, "Unnamed Character")
		assert.Contains(t, out, "the rest is history")
		assert.NotContains(t, out, "Ability Scores")
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := export.Render(nil, export.FormatText)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = export.Render(testCharacter(), "pdf")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "pdf")
}
