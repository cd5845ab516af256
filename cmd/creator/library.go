package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/export"
	"github.com/KirkDiggler/dnd-character-creator/internal/repositories/character"
)

var showFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}

		out, err := repo.List(cmd.Context(), character.ListInput{})
		if err != nil {
			return err
		}

		if len(out.Characters) == 0 {
			fmt.Println("No saved characters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tRACE\tCLASS\tLEVEL\tCREATED")
		for _, char := range out.Characters {
			name := char.Name
			if name == "" {
				name = "(unparsed)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
				char.ID,
				name,
				dnd5e.DisplayName(char.RaceID),
				dnd5e.DisplayName(char.ClassID),
				char.Level,
				time.Unix(char.CreatedAt, 0).Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}

		out, err := repo.Get(cmd.Context(), character.GetInput{ID: args[0]})
		if err != nil {
			return err
		}

		rendered, err := export.Render(out.Character, showFormat)
		if err != nil {
			return err
		}

		fmt.Print(rendered)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}

		if _, err := repo.Delete(cmd.Context(), character.DeleteInput{ID: args[0]}); err != nil {
			return err
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", export.FormatText, "output format (text, markdown, json)")
}
