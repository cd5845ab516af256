package creation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
)

// sectionRegex matches a section header at the start of a line, tolerating
// markdown bold/heading noise even though the prompt asks for plain text.
var sectionRegex = regexp.MustCompile(`(?i)^[#*\s]*(name|backstory|traits|ideals|bonds|flaws|equipment|features|spells|ability scores)[:*]+\s*(.*)$`)

// abilityLineRegex matches "Strength: 14" style lines, with or without a
// leading list marker.
var abilityLineRegex = regexp.MustCompile(`(?i)^[-*\s]*(strength|dexterity|constitution|intelligence|wisdom|charisma)[:*]+\s*(\d+)`)

// parsedResponse holds the sections extracted from a generation response.
type parsedResponse struct {
	Name      string
	Backstory string
	Traits    string
	Ideals    string
	Bonds     string
	Flaws     string
	Equipment string
	Features  string
	Spells    string
	Scores    map[string]int
}

// complete reports whether the response carried the markers parsing
// depends on. Name and Backstory are the minimum contract.
func (p *parsedResponse) complete() bool {
	return p.Name != "" && p.Backstory != ""
}

// parseResponse splits free text into sections by header matching. It never
// fails: callers check complete() and fall back to the raw text when the
// markers are missing.
func parseResponse(text string) *parsedResponse {
	parsed := &parsedResponse{Scores: make(map[string]int)}

	sections := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		if m := sectionRegex.FindStringSubmatch(line); m != nil {
			current = strings.ToLower(m[1])
			if rest := strings.TrimSpace(m[2]); rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	joined := func(key string) string {
		return strings.TrimSpace(strings.Join(sections[key], "\n"))
	}

	parsed.Name = firstLine(joined("name"))
	parsed.Backstory = joined("backstory")
	parsed.Traits = joined("traits")
	parsed.Ideals = joined("ideals")
	parsed.Bonds = joined("bonds")
	parsed.Flaws = joined("flaws")
	parsed.Equipment = joined("equipment")
	parsed.Features = joined("features")
	parsed.Spells = joined("spells")

	for _, line := range sections["ability scores"] {
		m := abilityLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		score, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		name := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
		parsed.Scores[name] = score
	}

	return parsed
}

// hasAllScores reports whether every ability was present in the response.
func (p *parsedResponse) hasAllScores() bool {
	for _, key := range dnd5e.Abilities {
		if _, ok := p.Scores[key]; !ok {
			return false
		}
	}
	return true
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
