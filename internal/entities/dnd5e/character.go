// Package dnd5e implements the D&D 5e entities
package dnd5e

// AbilityScores holds the six ability scores for a character
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// ToMap returns the scores keyed by ability name in standard order keys.
func (a AbilityScores) ToMap() map[string]int {
	return map[string]int{
		AbilityKeyStrength:     a.Strength,
		AbilityKeyDexterity:    a.Dexterity,
		AbilityKeyConstitution: a.Constitution,
		AbilityKeyIntelligence: a.Intelligence,
		AbilityKeyWisdom:       a.Wisdom,
		AbilityKeyCharisma:     a.Charisma,
	}
}

// FromMap builds AbilityScores from a name-keyed map, leaving unknown keys
// alone and missing keys at zero.
func FromMap(m map[string]int) AbilityScores {
	return AbilityScores{
		Strength:     m[AbilityKeyStrength],
		Dexterity:    m[AbilityKeyDexterity],
		Constitution: m[AbilityKeyConstitution],
		Intelligence: m[AbilityKeyIntelligence],
		Wisdom:       m[AbilityKeyWisdom],
		Charisma:     m[AbilityKeyCharisma],
	}
}

// Modifier computes the ability modifier for a score, floored.
func Modifier(score int) int {
	if score >= 10 || (score-10)%2 == 0 {
		return (score - 10) / 2
	}
	// Go truncates toward zero; odd scores below 10 need the extra step down
	return (score-10)/2 - 1
}

// Character represents a generated D&D 5e character.
// NOTE: This is a data-only struct produced from an LLM response; nothing
// here enforces 5e rules correctness.
type Character struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	RaceID        string        `json:"race_id"`
	ClassID       string        `json:"class_id"`
	AlignmentID   string        `json:"alignment_id"`
	Level         int           `json:"level"`
	Backstory     string        `json:"backstory"`
	Traits        string        `json:"traits,omitempty"`
	Ideals        string        `json:"ideals,omitempty"`
	Bonds         string        `json:"bonds,omitempty"`
	Flaws         string        `json:"flaws,omitempty"`
	Equipment     string        `json:"equipment,omitempty"`
	Features      string        `json:"features,omitempty"`
	Spells        string        `json:"spells,omitempty"`
	AbilityScores AbilityScores `json:"ability_scores"`

	// RawResponse is set only when the service response could not be parsed
	// into sections; it carries the full text so nothing is lost.
	RawResponse string `json:"raw_response,omitempty"`

	CreatedAt int64 `json:"created_at"`
}

// Parsed reports whether the response parsed into structured fields.
func (c *Character) Parsed() bool {
	return c.RawResponse == ""
}
