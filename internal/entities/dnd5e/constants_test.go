package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
)

func TestDisplayName(t *testing.T) {
	testCases := []struct {
		id       string
		expected string
	}{
		{dnd5e.RaceElf, "Elf"},
		{dnd5e.RaceHalfElf, "Half-Elf"},
		{dnd5e.RaceHalfOrc, "Half-Orc"},
		{dnd5e.RaceDragonborn, "Dragonborn"},
		{dnd5e.ClassRogue, "Rogue"},
		{dnd5e.ClassWizard, "Wizard"},
		{dnd5e.AlignmentChaoticNeutral, "Chaotic Neutral"},
		{dnd5e.AlignmentTrueNeutral, "True Neutral"},
		{dnd5e.MethodStandardArray, "standard array"},
		{dnd5e.MethodPointBuy, "point buy"},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.expected, dnd5e.DisplayName(tc.id))
		})
	}
}

func TestNormalizeRace(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"display form", "Elf", dnd5e.RaceElf, true},
		{"lowercase", "elf", dnd5e.RaceElf, true},
		{"hyphenated", "Half-Elf", dnd5e.RaceHalfElf, true},
		{"spaced", "half elf", dnd5e.RaceHalfElf, true},
		{"constant form", "RACE_HALF_ORC", dnd5e.RaceHalfOrc, true},
		{"padded", "  Tiefling  ", dnd5e.RaceTiefling, true},
		{"unknown", "Warforged", "Warforged", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := dnd5e.NormalizeRace(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeAlignment(t *testing.T) {
	got, ok := dnd5e.NormalizeAlignment("Chaotic Neutral")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.AlignmentChaoticNeutral, got)

	got, ok = dnd5e.NormalizeAlignment("lawful_good")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.AlignmentLawfulGood, got)

	_, ok = dnd5e.NormalizeAlignment("mostly harmless")
	assert.False(t, ok)
}

func TestNormalizeMethod(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"standard array", dnd5e.MethodStandardArray},
		{"standard", dnd5e.MethodStandardArray},
		{"roll", dnd5e.MethodRoll},
		{"rolled", dnd5e.MethodRoll},
		{"point buy", dnd5e.MethodPointBuy},
		{"point-buy", dnd5e.MethodPointBuy},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := dnd5e.NormalizeMethod(tc.input)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeClassRoundTrip(t *testing.T) {
	// Every class constant survives normalization of its display form
	for _, id := range dnd5e.Classes {
		got, ok := dnd5e.NormalizeClass(dnd5e.DisplayName(id))
		assert.True(t, ok, "class %s", id)
		assert.Equal(t, id, got)
	}
}

func TestIsSpellcaster(t *testing.T) {
	assert.True(t, dnd5e.IsSpellcaster(dnd5e.ClassWizard))
	assert.True(t, dnd5e.IsSpellcaster(dnd5e.ClassPaladin))
	assert.False(t, dnd5e.IsSpellcaster(dnd5e.ClassFighter))
	assert.False(t, dnd5e.IsSpellcaster(dnd5e.ClassRogue))
}

func TestModifier(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{3, -4},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{15, 2},
		{18, 4},
		{20, 5},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, dnd5e.Modifier(tc.score), "score %d", tc.score)
	}
}

func TestAbilityScoresMapRoundTrip(t *testing.T) {
	scores := dnd5e.AbilityScores{
		Strength:     10,
		Dexterity:    15,
		Constitution: 12,
		Intelligence: 16,
		Wisdom:       13,
		Charisma:     11,
	}

	m := scores.ToMap()
	assert.Equal(t, 15, m[dnd5e.AbilityKeyDexterity])
	assert.Equal(t, scores, dnd5e.FromMap(m))
}
