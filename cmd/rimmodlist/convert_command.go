package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rimmodlist/internal/config"
	"rimmodlist/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "convert <save.rws> [save.rws...]",
		Short: "Write mod-list (.rml) and CSV exports for save files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				dir = cfg.Paths.OutputDir
			} else if dir, err = config.ExpandPath(dir); err != nil {
				return fmt.Errorf("resolve output directory: %w", err)
			}

			journal, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open history journal: %w", err)
			}
			if journal != nil {
				defer journal.Close()
			}

			converter := convert.New(cfg, logger, journal)
			results, runErr := converter.ConvertBatch(cmd.Context(), args, dir)

			out := cmd.OutOrStdout()
			for _, result := range results {
				if result.Written {
					fmt.Fprintf(out, "%s: %d mods -> %s, %s\n",
						result.SavePath, len(result.Mods), result.RMLPath, result.CSVPath)
				} else {
					fmt.Fprintf(out, "%s: no mods listed, outputs skipped\n", result.SavePath)
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory receiving the exports (defaults to paths.output_dir)")
	return cmd
}
