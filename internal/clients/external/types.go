package external

// RaceData represents race information from the D&D 5e API
type RaceData struct {
	ID             string
	Name           string
	Size           string
	Speed          int
	AbilityBonuses map[string]int
	Traits         []string
}

// ClassData represents class information from the D&D 5e API
type ClassData struct {
	ID                  string
	Name                string
	HitDie              int
	SavingThrows        []string
	SpellcastingAbility string
}
