package creation

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
)

// systemPrompt frames every generation call. Parsing depends on the section
// headers listed here, so the response contract lives in one place.
const systemPrompt = `You are a Dungeons & Dragons 5th edition character writer.
Respond in plain text using exactly these section headers, one per line, in this order:
Name:
Backstory:
Traits:
Ideals:
Bonds:
Flaws:
Equipment:
Features:
Ability Scores:

Under "Equipment:" list starting gear appropriate to the class and level.
Under "Features:" list the character's racial and class features.
Under "Ability Scores:" list each of Strength, Dexterity, Constitution, Intelligence, Wisdom, and Charisma as "<Ability>: <score>" on its own line.
Do not use markdown formatting. Do not add sections that are not listed.`

// detail level bands, mirroring brief/moderate/detailed backstory depths
var detailPhrasing = map[int]string{
	1: "Keep the backstory brief: two or three sentences.",
	2: "Write a short backstory of about one paragraph.",
	3: "Write a moderate backstory of two or three paragraphs.",
	4: "Write a detailed backstory of four or five paragraphs.",
	5: "Write a rich, detailed backstory of at least six paragraphs covering childhood, formative events, and recent history.",
}

// buildPrompt renders the user prompt for a validated request. Output is
// deterministic for a given request; only the detail level changes phrasing.
func buildPrompt(req *dnd5e.CharacterRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a level %d %s %s with a %s alignment.\n",
		req.Level,
		dnd5e.DisplayName(req.RaceID),
		dnd5e.DisplayName(req.ClassID),
		dnd5e.DisplayName(req.AlignmentID),
	)

	b.WriteString("Give the character an evocative name, a backstory, and personality traits, ideals, bonds, and flaws that fit the race, class, and alignment.\n")
	b.WriteString("Include starting equipment for the class and level, and the racial and class features the character has at this level.\n")
	b.WriteString(detailPhrasing[req.Detail])
	b.WriteString("\n")

	fmt.Fprintf(&b, "Ability scores were generated with the %s method.\n",
		dnd5e.DisplayName(req.MethodID))

	if dnd5e.IsSpellcaster(req.ClassID) {
		b.WriteString("Add a \"Spells:\" section after \"Features:\" describing one or two signature spells and how the character uses them.\n")
	}

	return b.String()
}
