package dnd5e

import "strings"

// Race constants
const (
	RaceDragonborn = "RACE_DRAGONBORN"
	RaceDwarf      = "RACE_DWARF"
	RaceElf        = "RACE_ELF"
	RaceGnome      = "RACE_GNOME"
	RaceHalfElf    = "RACE_HALF_ELF"
	RaceHalfOrc    = "RACE_HALF_ORC"
	RaceHalfling   = "RACE_HALFLING"
	RaceHuman      = "RACE_HUMAN"
	RaceTiefling   = "RACE_TIEFLING"
)

// Class constants
const (
	ClassBarbarian = "CLASS_BARBARIAN"
	ClassBard      = "CLASS_BARD"
	ClassCleric    = "CLASS_CLERIC"
	ClassDruid     = "CLASS_DRUID"
	ClassFighter   = "CLASS_FIGHTER"
	ClassMonk      = "CLASS_MONK"
	ClassPaladin   = "CLASS_PALADIN"
	ClassRanger    = "CLASS_RANGER"
	ClassRogue     = "CLASS_ROGUE"
	ClassSorcerer  = "CLASS_SORCERER"
	ClassWarlock   = "CLASS_WARLOCK"
	ClassWizard    = "CLASS_WIZARD"
)

// Alignment constants
const (
	AlignmentLawfulGood     = "ALIGNMENT_LAWFUL_GOOD"
	AlignmentNeutralGood    = "ALIGNMENT_NEUTRAL_GOOD"
	AlignmentChaoticGood    = "ALIGNMENT_CHAOTIC_GOOD"
	AlignmentLawfulNeutral  = "ALIGNMENT_LAWFUL_NEUTRAL"
	AlignmentTrueNeutral    = "ALIGNMENT_TRUE_NEUTRAL"
	AlignmentChaoticNeutral = "ALIGNMENT_CHAOTIC_NEUTRAL"
	AlignmentLawfulEvil     = "ALIGNMENT_LAWFUL_EVIL"
	AlignmentNeutralEvil    = "ALIGNMENT_NEUTRAL_EVIL"
	AlignmentChaoticEvil    = "ALIGNMENT_CHAOTIC_EVIL"
)

// Ability score method constants
const (
	MethodStandardArray = "METHOD_STANDARD_ARRAY"
	MethodRoll          = "METHOD_ROLL"
	MethodPointBuy      = "METHOD_POINT_BUY"
)

// Ability score map keys for JSON serialization
const (
	AbilityKeyStrength     = "Strength"
	AbilityKeyDexterity    = "Dexterity"
	AbilityKeyConstitution = "Constitution"
	AbilityKeyIntelligence = "Intelligence"
	AbilityKeyWisdom       = "Wisdom"
	AbilityKeyCharisma     = "Charisma"
)

// Level bounds for player characters
const (
	LevelMin = 1
	LevelMax = 20
)

// Backstory detail bounds. 1 is a couple of sentences, 5 is a full page.
const (
	DetailMin = 1
	DetailMax = 5
)

// Races lists every playable race in the order presented to the user.
var Races = []string{
	RaceDragonborn,
	RaceDwarf,
	RaceElf,
	RaceGnome,
	RaceHalfElf,
	RaceHalfOrc,
	RaceHalfling,
	RaceHuman,
	RaceTiefling,
}

// Classes lists every playable class in the order presented to the user.
var Classes = []string{
	ClassBarbarian,
	ClassBard,
	ClassCleric,
	ClassDruid,
	ClassFighter,
	ClassMonk,
	ClassPaladin,
	ClassRanger,
	ClassRogue,
	ClassSorcerer,
	ClassWarlock,
	ClassWizard,
}

// Alignments lists the nine alignment combinations.
var Alignments = []string{
	AlignmentLawfulGood,
	AlignmentNeutralGood,
	AlignmentChaoticGood,
	AlignmentLawfulNeutral,
	AlignmentTrueNeutral,
	AlignmentChaoticNeutral,
	AlignmentLawfulEvil,
	AlignmentNeutralEvil,
	AlignmentChaoticEvil,
}

// Methods lists the supported ability score generation methods.
var Methods = []string{
	MethodStandardArray,
	MethodRoll,
	MethodPointBuy,
}

// Abilities lists the six ability score keys in standard order.
var Abilities = []string{
	AbilityKeyStrength,
	AbilityKeyDexterity,
	AbilityKeyConstitution,
	AbilityKeyIntelligence,
	AbilityKeyWisdom,
	AbilityKeyCharisma,
}

// spellcasters are the classes that get a spell flavor section in prompts.
var spellcasters = map[string]bool{
	ClassBard:     true,
	ClassCleric:   true,
	ClassDruid:    true,
	ClassPaladin:  true,
	ClassRanger:   true,
	ClassSorcerer: true,
	ClassWarlock:  true,
	ClassWizard:   true,
}

// IsSpellcaster reports whether the class has spellcasting at some level.
func IsSpellcaster(classID string) bool {
	return spellcasters[classID]
}

// DisplayName converts a constant like "RACE_HALF_ELF" or
// "ALIGNMENT_CHAOTIC_NEUTRAL" to its human-readable form ("Half-Elf",
// "Chaotic Neutral"). Races keep hyphens, everything else uses spaces.
func DisplayName(id string) string {
	prefix := ""
	switch {
	case strings.HasPrefix(id, "RACE_"):
		prefix = "RACE_"
	case strings.HasPrefix(id, "CLASS_"):
		prefix = "CLASS_"
	case strings.HasPrefix(id, "ALIGNMENT_"):
		prefix = "ALIGNMENT_"
	case strings.HasPrefix(id, "METHOD_"):
		prefix = "METHOD_"
	}

	name := strings.TrimPrefix(id, prefix)
	words := strings.Split(strings.ToLower(name), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	if prefix == "RACE_" && len(words) > 1 && words[0] == "Half" {
		return strings.Join(words, "-")
	}
	if prefix == "METHOD_" {
		return strings.ToLower(strings.Join(words, " "))
	}
	return strings.Join(words, " ")
}

// normalizeKey lowercases input and strips separators so "Half-Elf",
// "half elf", and "HALF_ELF" all map to the same key.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func buildLookup(ids []string) map[string]string {
	m := make(map[string]string, len(ids))
	for _, id := range ids {
		m[normalizeKey(id)] = id
		m[normalizeKey(DisplayName(id))] = id
	}
	return m
}

var (
	raceLookup      = buildLookup(Races)
	classLookup     = buildLookup(Classes)
	alignmentLookup = buildLookup(Alignments)
	methodLookup    = buildLookup(Methods)
)

func init() {
	// Common shorthand for ability score methods
	methodLookup[normalizeKey("standard")] = MethodStandardArray
	methodLookup[normalizeKey("array")] = MethodStandardArray
	methodLookup[normalizeKey("rolled")] = MethodRoll
	methodLookup[normalizeKey("pointbuy")] = MethodPointBuy
}

// NormalizeRace maps user input to a race constant. Returns the input
// unchanged with ok=false when it matches nothing.
func NormalizeRace(input string) (string, bool) {
	id, ok := raceLookup[normalizeKey(input)]
	if !ok {
		return input, false
	}
	return id, true
}

// NormalizeClass maps user input to a class constant.
func NormalizeClass(input string) (string, bool) {
	id, ok := classLookup[normalizeKey(input)]
	if !ok {
		return input, false
	}
	return id, true
}

// NormalizeAlignment maps user input to an alignment constant.
func NormalizeAlignment(input string) (string, bool) {
	id, ok := alignmentLookup[normalizeKey(input)]
	if !ok {
		return input, false
	}
	return id, true
}

// NormalizeMethod maps user input to an ability score method constant.
func NormalizeMethod(input string) (string, bool) {
	id, ok := methodLookup[normalizeKey(input)]
	if !ok {
		return input, false
	}
	return id, true
}

// DisplayNames maps a slice of constants to their display forms.
func DisplayNames(ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = DisplayName(id)
	}
	return names
}
