// Package export renders characters for display and file output.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// Supported output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON}

// Render formats a character in the requested format.
// Returns errors.InvalidArgument for unknown formats.
func Render(char *dnd5e.Character, format string) (string, error) {
	if char == nil {
		return "", errors.InvalidArgument("character cannot be nil")
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return renderText(char), nil
	case FormatMarkdown, "md":
		return renderMarkdown(char), nil
	case FormatJSON:
		data, err := json.MarshalIndent(char, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal character")
		}
		return string(data) + "\n", nil
	default:
		return "", errors.InvalidArgumentf("unknown format %q (valid: %s)",
			format, strings.Join(Formats, ", "))
	}
}

func summaryLine(char *dnd5e.Character) string {
	return fmt.Sprintf("Level %d %s %s, %s",
		char.Level,
		dnd5e.DisplayName(char.RaceID),
		dnd5e.DisplayName(char.ClassID),
		dnd5e.DisplayName(char.AlignmentID),
	)
}

func renderText(char *dnd5e.Character) string {
	var b strings.Builder

	name := char.Name
	if name == "" {
		name = "Unnamed Character"
	}

	b.WriteString(name + "\n")
	b.WriteString(strings.Repeat("=", len(name)) + "\n")
	b.WriteString(summaryLine(char) + "\n\n")

	if !char.Parsed() {
		// Nothing structured to show, pass the raw response through
		b.WriteString(strings.TrimSpace(char.RawResponse) + "\n")
		return b.String()
	}

	b.WriteString("Ability Scores\n--------------\n")
	scores := char.AbilityScores.ToMap()
	for _, ability := range dnd5e.Abilities {
		score := scores[ability]
		fmt.Fprintf(&b, "%-13s %2d (%+d)\n", ability, score, dnd5e.Modifier(score))
	}
	b.WriteString("\n")

	for _, section := range characterSections(char) {
		b.WriteString(section.title + "\n")
		b.WriteString(strings.Repeat("-", len(section.title)) + "\n")
		b.WriteString(section.body + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderMarkdown(char *dnd5e.Character) string {
	var b strings.Builder

	name := char.Name
	if name == "" {
		name = "Unnamed Character"
	}

	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "*%s*\n\n", summaryLine(char))

	if !char.Parsed() {
		b.WriteString(strings.TrimSpace(char.RawResponse) + "\n")
		return b.String()
	}

	b.WriteString("## Ability Scores\n\n")
	b.WriteString("| Ability | Score | Modifier |\n")
	b.WriteString("|---------|-------|----------|\n")
	scores := char.AbilityScores.ToMap()
	for _, ability := range dnd5e.Abilities {
		score := scores[ability]
		fmt.Fprintf(&b, "| %s | %d | %+d |\n", ability, score, dnd5e.Modifier(score))
	}
	b.WriteString("\n")

	for _, section := range characterSections(char) {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", section.title, section.body)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

type section struct {
	title string
	body  string
}

// characterSections returns the non-empty narrative sections in display order.
func characterSections(char *dnd5e.Character) []section {
	all := []section{
		{"Backstory", char.Backstory},
		{"Traits", char.Traits},
		{"Ideals", char.Ideals},
		{"Bonds", char.Bonds},
		{"Flaws", char.Flaws},
		{"Equipment", char.Equipment},
		{"Features", char.Features},
		{"Spells", char.Spells},
	}

	sections := make([]section, 0, len(all))
	for _, s := range all {
		if strings.TrimSpace(s.body) != "" {
			sections = append(sections, s)
		}
	}
	return sections
}
