package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/export"
	"github.com/KirkDiggler/dnd-character-creator/internal/orchestrators/creation"
	"github.com/KirkDiggler/dnd-character-creator/internal/repositories/character"
)

var (
	generateRace      string
	generateClass     string
	generateAlignment string
	generateLevel     int
	generateMethod    string
	generateDetail    int

	generateFormat         string
	generateOutput         string
	generateSave           bool
	generateNonInteractive bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new character",
	Long: `Generate a character from a race, class, alignment, and level. Missing
fields are prompted for unless --non-interactive is set.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateRace, "race", "", "character race (e.g. Elf, Half-Orc)")
	generateCmd.Flags().StringVar(&generateClass, "class", "", "character class (e.g. Rogue, Wizard)")
	generateCmd.Flags().StringVar(&generateAlignment, "alignment", "", "character alignment (e.g. Chaotic Neutral)")
	generateCmd.Flags().IntVar(&generateLevel, "level", 0, "character level (1-20)")
	generateCmd.Flags().StringVar(&generateMethod, "method", "", "ability score method (standard array, roll, point buy)")
	generateCmd.Flags().IntVar(&generateDetail, "detail", 0, "backstory detail level (1-5)")

	generateCmd.Flags().StringVar(&generateFormat, "format", export.FormatText, "output format (text, markdown, json)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write output to a file instead of stdout")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "save the character to the configured store")
	generateCmd.Flags().BoolVar(&generateNonInteractive, "non-interactive", false, "fail on missing or invalid fields instead of prompting")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	raw := &creation.RawRequest{
		Race:      generateRace,
		Class:     generateClass,
		Alignment: generateAlignment,
		Level:     generateLevel,
		Method:    generateMethod,
		Detail:    generateDetail,
	}

	req, err := buildRequest(raw, cmd.Flags().Changed("level"), cmd.Flags().Changed("detail"))
	if err != nil {
		return err
	}

	svc, err := newOrchestrator(ctx)
	if err != nil {
		return err
	}

	genCtx, cancel := context.WithTimeout(ctx, cfg.GenerationTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Generating a level %d %s %s...\n",
		req.Level, dnd5e.DisplayName(req.RaceID), dnd5e.DisplayName(req.ClassID))

	out, err := svc.GenerateCharacter(genCtx, &creation.GenerateCharacterInput{Request: req})
	if err != nil {
		return err
	}

	char := out.Character
	if !char.Parsed() {
		fmt.Fprintln(os.Stderr, "Warning: the response could not be parsed into sections; showing raw text.")
	}

	if generateSave {
		repo, err := newRepository()
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, character.CreateInput{Character: char}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved as %s\n", char.ID)
	}

	rendered, err := export.Render(char, generateFormat)
	if err != nil {
		return err
	}

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(rendered), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", generateOutput)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", generateOutput)
		return nil
	}

	fmt.Print(rendered)
	return nil
}

// buildRequest validates the flags, falling back to interactive prompting
// for anything missing or invalid unless --non-interactive is set.
func buildRequest(raw *creation.RawRequest, levelSet, detailSet bool) (*dnd5e.CharacterRequest, error) {
	// Unset flags get defaults; explicit values, valid or not, reach the
	// validator. Only race, class, and alignment must be answered.
	if !levelSet && raw.Level == 0 {
		raw.Level = 1
	}
	if raw.Method == "" {
		raw.Method = dnd5e.MethodStandardArray
	}
	if !detailSet && raw.Detail == 0 {
		raw.Detail = 3
	}

	if generateNonInteractive {
		return creation.BuildRequest(raw)
	}

	if req, err := creation.BuildRequest(raw); err == nil {
		return req, nil
	}

	p := newPrompter(os.Stdin, os.Stderr)
	if err := p.completeRequest(raw); err != nil {
		return nil, err
	}
	return creation.BuildRequest(raw)
}
