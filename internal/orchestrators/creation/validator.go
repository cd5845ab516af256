package creation

import (
	"strings"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// BuildRequest normalizes raw user input into a CharacterRequest, rejecting
// anything outside the fixed enumerations and ranges. The returned error
// names every offending field.
func BuildRequest(raw *RawRequest) (*dnd5e.CharacterRequest, error) {
	if raw == nil {
		return nil, errors.InvalidArgument("request cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	raceID, ok := dnd5e.NormalizeRace(raw.Race)
	if !ok {
		vb.Fieldf("race", "%q is not a valid race (valid: %s)",
			raw.Race, joinNames(dnd5e.Races))
	}

	classID, ok := dnd5e.NormalizeClass(raw.Class)
	if !ok {
		vb.Fieldf("class", "%q is not a valid class (valid: %s)",
			raw.Class, joinNames(dnd5e.Classes))
	}

	alignmentID, ok := dnd5e.NormalizeAlignment(raw.Alignment)
	if !ok {
		vb.Fieldf("alignment", "%q is not a valid alignment (valid: %s)",
			raw.Alignment, joinNames(dnd5e.Alignments))
	}

	methodID, ok := dnd5e.NormalizeMethod(raw.Method)
	if !ok {
		vb.Fieldf("method", "%q is not a valid ability score method (valid: %s)",
			raw.Method, joinNames(dnd5e.Methods))
	}

	errors.ValidateRange("level", raw.Level, dnd5e.LevelMin, dnd5e.LevelMax, vb)
	errors.ValidateRange("detail", raw.Detail, dnd5e.DetailMin, dnd5e.DetailMax, vb)

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &dnd5e.CharacterRequest{
		RaceID:      raceID,
		ClassID:     classID,
		AlignmentID: alignmentID,
		Level:       raw.Level,
		MethodID:    methodID,
		Detail:      raw.Detail,
	}, nil
}

// ValidateRequest checks an already-normalized request against the
// enumerations. Used as the last gate before any external call.
func ValidateRequest(req *dnd5e.CharacterRequest) error {
	if req == nil {
		return errors.InvalidArgument("request cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("race", req.RaceID, dnd5e.Races, vb)
	errors.ValidateEnum("class", req.ClassID, dnd5e.Classes, vb)
	errors.ValidateEnum("alignment", req.AlignmentID, dnd5e.Alignments, vb)
	errors.ValidateEnum("method", req.MethodID, dnd5e.Methods, vb)
	errors.ValidateRange("level", req.Level, dnd5e.LevelMin, dnd5e.LevelMax, vb)
	errors.ValidateRange("detail", req.Detail, dnd5e.DetailMin, dnd5e.DetailMax, vb)
	return vb.Build()
}

func joinNames(ids []string) string {
	return strings.Join(dnd5e.DisplayNames(ids), ", ")
}
