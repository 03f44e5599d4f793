package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"rimmodlist/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history journal is disabled in configuration")
			}

			journal, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history journal: %w", err)
			}
			defer journal.Close()

			conversions, err := journal.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(conversions) == 0 {
				fmt.Fprintln(out, "No conversions recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(conversions))
			for _, conv := range conversions {
				output := "skipped (no mods)"
				if conv.RMLPath != "" {
					output = conv.RMLPath
				}
				rows = append(rows, []string{
					conv.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					filepath.Base(conv.SavePath),
					conv.GameVersion,
					strconv.Itoa(conv.ModCount),
					output,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Save", "Version", "Mods", "Output"},
				rows,
				map[int]bool{3: true},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to display")
	return cmd
}
