package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/orchestrators/creation"
)

// prompter collects missing request fields interactively, re-asking until
// the answer is valid.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", errors.InvalidArgument("input closed before the request was complete")
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askChoice keeps asking until the answer normalizes to a valid option.
// Empty input takes the default when one is set.
func (p *prompter) askChoice(label string, options []string, normalize func(string) (string, bool), def string) (string, error) {
	names := strings.Join(dnd5e.DisplayNames(options), ", ")

	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", label, dnd5e.DisplayName(def))
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" && def != "" {
			return def, nil
		}

		if id, ok := normalize(answer); ok {
			return id, nil
		}
		fmt.Fprintf(p.out, "%q is not valid. Options: %s\n", answer, names)
	}
}

// askInt keeps asking until the answer is a number in [minValue, maxValue].
func (p *prompter) askInt(label string, minValue, maxValue, def int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s (%d-%d) [%d]: ", label, minValue, maxValue, def)

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= minValue && n <= maxValue {
			return n, nil
		}
		fmt.Fprintf(p.out, "Enter a number between %d and %d.\n", minValue, maxValue)
	}
}

// completeRequest fills in any unset fields of the raw request by prompting.
// Already-set fields are validated and re-asked only when invalid.
func (p *prompter) completeRequest(raw *creation.RawRequest) error {
	var err error

	raw.Race, err = p.askSet(raw.Race, "Race", dnd5e.Races, dnd5e.NormalizeRace)
	if err != nil {
		return err
	}

	raw.Class, err = p.askSet(raw.Class, "Class", dnd5e.Classes, dnd5e.NormalizeClass)
	if err != nil {
		return err
	}

	raw.Alignment, err = p.askSet(raw.Alignment, "Alignment", dnd5e.Alignments, dnd5e.NormalizeAlignment)
	if err != nil {
		return err
	}

	if raw.Level < dnd5e.LevelMin || raw.Level > dnd5e.LevelMax {
		raw.Level, err = p.askInt("Level", dnd5e.LevelMin, dnd5e.LevelMax, dnd5e.LevelMin)
		if err != nil {
			return err
		}
	}

	raw.Method, err = p.askSet(raw.Method, "Ability score method", dnd5e.Methods, dnd5e.NormalizeMethod)
	if err != nil {
		return err
	}

	if raw.Detail < dnd5e.DetailMin || raw.Detail > dnd5e.DetailMax {
		raw.Detail, err = p.askInt("Backstory detail", dnd5e.DetailMin, dnd5e.DetailMax, 3)
		if err != nil {
			return err
		}
	}

	return nil
}

// askSet prompts only when the current value is empty or invalid. The method
// field gets a default so pressing enter works; the rest must be answered.
func (p *prompter) askSet(current, label string, options []string, normalize func(string) (string, bool)) (string, error) {
	if current != "" {
		if id, ok := normalize(current); ok {
			return id, nil
		}
		fmt.Fprintf(p.out, "%q is not a valid %s.\n", current, strings.ToLower(label))
	}

	def := ""
	if label == "Ability score method" {
		def = dnd5e.MethodStandardArray
	}
	return p.askChoice(label, options, normalize, def)
}
