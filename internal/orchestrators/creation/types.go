package creation

import (
	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
)

// RawRequest holds unvalidated user input exactly as it was collected from
// flags or interactive prompts.
type RawRequest struct {
	Race      string
	Class     string
	Alignment string
	Level     int
	Method    string
	Detail    int
}

// GenerateCharacterInput defines the input for generating a character
type GenerateCharacterInput struct {
	Request *dnd5e.CharacterRequest
}

// GenerateCharacterOutput defines the output of generating a character
type GenerateCharacterOutput struct {
	Character *dnd5e.Character

	// Model records which model produced the text
	Model string
}
