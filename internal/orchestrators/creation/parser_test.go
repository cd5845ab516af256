package creation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
)

const wellFormedResponse = `Name: Kaelith Moonshadow
Backstory: Kaelith grew up in the shadowed alleys of Silverymoon, picking
pockets to survive after her family vanished during a fey incursion.
She trusts her blades more than any promise.
Traits: Quick-witted and quicker-fingered. Never sits with her back to a door.
Ideals: Freedom above all. Nobody owns her.
Bonds: She still searches for the brooch her mother wore the night she disappeared.
Flaws: She cannot resist a locked box, no matter whose it is.
Equipment: Two daggers, leather armor, thieves' tools, a burglar's pack.
Features: Darkvision, Fey Ancestry, Sneak Attack, Thieves' Cant.
Ability Scores:
Strength: 8
Dexterity: 15
Constitution: 13
Intelligence: 12
Wisdom: 10
Charisma: 14`

func TestParseResponse(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		parsed := parseResponse(wellFormedResponse)

		require.True(t, parsed.complete())
		assert.Equal(t, "Kaelith Moonshadow", parsed.Name)
		assert.Contains(t, parsed.Backstory, "Silverymoon")
		assert.Contains(t, parsed.Backstory, "trusts her blades")
		assert.Contains(t, parsed.Traits, "Quick-witted")
		assert.Contains(t, parsed.Ideals, "Freedom")
		assert.Contains(t, parsed.Bonds, "brooch")
		assert.Contains(t, parsed.Flaws, "locked box")
		assert.Contains(t, parsed.Equipment, "thieves' tools")
		assert.Contains(t, parsed.Features, "Sneak Attack")
		assert.Empty(t, parsed.Spells)

		require.True(t, parsed.hasAllScores())
		assert.Equal(t, 15, parsed.Scores[dnd5e.AbilityKeyDexterity])
		assert.Equal(t, 8, parsed.Scores[dnd5e.AbilityKeyStrength])
	})

	t.Run("tolerates markdown noise", func(t *testing.T) {
		text := "**Name:** Borin Ironfist\n## Backstory:\nA dwarf of the deep halls.\n**Ability Scores:**\n- Strength: 16\n- Dexterity: 10"

		parsed := parseResponse(text)
		require.True(t, parsed.complete())
		assert.Equal(t, "Borin Ironfist", parsed.Name)
		assert.Equal(t, "A dwarf of the deep halls.", parsed.Backstory)
		assert.Equal(t, 16, parsed.Scores[dnd5e.AbilityKeyStrength])
		assert.False(t, parsed.hasAllScores())
	})

	t.Run("case insensitive headers", func(t *testing.T) {
		parsed := parseResponse("NAME: Tess\nbackstory: A wanderer.")
		require.True(t, parsed.complete())
		assert.Equal(t, "Tess", parsed.Name)
		assert.Equal(t, "A wanderer.", parsed.Backstory)
	})

	t.Run("spells section", func(t *testing.T) {
		text := "Name: Elara\nBackstory: A wizard.\nSpells:\nShe favors Magic Missile and Shield."

		parsed := parseResponse(text)
		require.True(t, parsed.complete())
		assert.Contains(t, parsed.Spells, "Magic Missile")
	})

	t.Run("missing markers is incomplete, never an error", func(t *testing.T) {
		text := "Once upon a time there was a rogue who had no section headers at all."

		parsed := parseResponse(text)
		assert.False(t, parsed.complete())
		assert.Empty(t, parsed.Name)
		assert.Empty(t, parsed.Backstory)
	})

	t.Run("name only is incomplete", func(t *testing.T) {
		parsed := parseResponse("Name: Kaelith Moonshadow")
		assert.False(t, parsed.complete())
	})

	t.Run("empty input", func(t *testing.T) {
		parsed := parseResponse("")
		assert.False(t, parsed.complete())
		assert.False(t, parsed.hasAllScores())
	})

	t.Run("name trimmed to first line", func(t *testing.T) {
		parsed := parseResponse("Name:\nKaelith Moonshadow\nof Silverymoon\nBackstory: Raised by wolves.")
		require.True(t, parsed.complete())
		assert.Equal(t, "Kaelith Moonshadow", parsed.Name)
	})
}
