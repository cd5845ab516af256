// Package main is the entry point for the character creator CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-creator/internal/config"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "creator",
	Short: "D&D 5e character creator",
	Long: `Creator generates D&D 5e characters with an LLM. It validates the
requested race, class, alignment, and level, asks the configured provider for
a name, backstory, and personality, and can save the result for later.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := config.ParseLogLevel(cfg.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(racesCmd)
	rootCmd.AddCommand(classesCmd)
}
