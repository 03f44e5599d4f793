package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rimmodlist/internal/save"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show <save.rws>",
		Short:       "Print the mod list stored in a save file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			extraction, err := save.Extract(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Game version: %s\n", extraction.GameVersion)
			fmt.Fprintf(out, "Mods: %d\n", len(extraction.Mods))
			if len(extraction.Mods) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(extraction.Mods))
			for _, mod := range extraction.Mods {
				rows = append(rows, []string{mod.ID, mod.Name, mod.SteamID})
			}
			fmt.Fprintln(out, renderTable([]string{"Mod ID", "Name", "Steam ID"}, rows, nil))
			return nil
		},
	}
}
