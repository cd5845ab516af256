package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-creator/internal/clients/external"
	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
)

var racesCmd = &cobra.Command{
	Use:   "races",
	Short: "List playable races",
	Long:  `List playable races with SRD details when the SRD API is reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := external.New(&external.Config{})
		if err != nil {
			return err
		}

		races, err := client.ListAvailableRaces(cmd.Context())
		if err != nil {
			// The catalog works offline too, just without details
			slog.Debug("SRD lookup failed, using built-in list", "error", err)
			for _, name := range dnd5e.DisplayNames(dnd5e.Races) {
				fmt.Println(name)
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RACE\tSIZE\tSPEED\tBONUSES")
		for _, race := range races {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				race.Name, race.Size, race.Speed, formatBonuses(race.AbilityBonuses))
		}
		return w.Flush()
	},
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List playable classes",
	Long:  `List playable classes with SRD details when the SRD API is reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := external.New(&external.Config{})
		if err != nil {
			return err
		}

		classes, err := client.ListAvailableClasses(cmd.Context())
		if err != nil {
			slog.Debug("SRD lookup failed, using built-in list", "error", err)
			for _, name := range dnd5e.DisplayNames(dnd5e.Classes) {
				fmt.Println(name)
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CLASS\tHIT DIE\tSAVES\tSPELLCASTING")
		for _, class := range classes {
			spellcasting := class.SpellcastingAbility
			if spellcasting == "" {
				spellcasting = "-"
			}
			fmt.Fprintf(w, "%s\td%d\t%s\t%s\n",
				class.Name, class.HitDie, strings.Join(class.SavingThrows, ", "), spellcasting)
		}
		return w.Flush()
	},
}

func formatBonuses(bonuses map[string]int) string {
	if len(bonuses) == 0 {
		return "-"
	}

	abilities := make([]string, 0, len(bonuses))
	for ability := range bonuses {
		abilities = append(abilities, ability)
	}
	sort.Strings(abilities)

	parts := make([]string, 0, len(abilities))
	for _, ability := range abilities {
		parts = append(parts, fmt.Sprintf("%s %+d", ability, bonuses[ability]))
	}
	return strings.Join(parts, ", ")
}
