// Package convert runs the extract-and-emit pipeline for save files.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"rimmodlist/internal/config"
	"rimmodlist/internal/csvexport"
	"rimmodlist/internal/history"
	"rimmodlist/internal/logging"
	"rimmodlist/internal/modlist"
	"rimmodlist/internal/paths"
	"rimmodlist/internal/save"
)

const lockFileName = ".rimmodlist.lock"

// Result describes the outcome of converting one save file. Written is
// false when the save listed no mods and both emitters skipped their files.
type Result struct {
	SavePath    string
	GameVersion string
	Mods        []save.ModRecord
	RMLPath     string
	CSVPath     string
	Written     bool
}

// Converter turns save files into mod-list and CSV exports.
type Converter struct {
	cfg     *config.Config
	logger  *slog.Logger
	journal *history.Store
}

// New builds a Converter. journal may be nil when the history journal is
// disabled; logger may be nil for silent operation.
func New(cfg *config.Config, logger *slog.Logger, journal *history.Store) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{cfg: cfg, logger: logger, journal: journal}
}

// ConvertFile extracts one save and writes its .rml and .csv exports into
// outputDir, falling back to the configured output directory when outputDir
// is empty. Extraction failures leave no output behind; emitters never run
// when extraction fails.
func (c *Converter) ConvertFile(ctx context.Context, savePath, outputDir string) (*Result, error) {
	outputs, err := paths.Resolve(savePath, c.outputDir(outputDir))
	if err != nil {
		return nil, err
	}

	c.logger.Info("loading mods from save file", "save", savePath)
	extraction, err := save.Extract(savePath)
	if err != nil {
		return nil, err
	}
	c.logger.Info("extracted mod list",
		"save", savePath,
		"game_version", extraction.GameVersion,
		"mods", len(extraction.Mods))

	result := &Result{
		SavePath:    savePath,
		GameVersion: extraction.GameVersion,
		Mods:        extraction.Mods,
	}

	if len(extraction.Mods) == 0 {
		c.logger.Warn("save lists no mods, skipping output files", "save", savePath)
	} else {
		if err := modlist.Write(extraction.GameVersion, extraction.Mods, outputs.RML); err != nil {
			return nil, err
		}
		c.logger.Info("wrote mod list", "path", outputs.RML)
		if err := csvexport.Write(extraction.Mods, outputs.CSV); err != nil {
			return nil, err
		}
		c.logger.Info("wrote csv export", "path", outputs.CSV)
		result.RMLPath = outputs.RML
		result.CSVPath = outputs.CSV
		result.Written = true
	}

	if c.journal != nil {
		conv := history.Conversion{
			SavePath:    savePath,
			GameVersion: extraction.GameVersion,
			ModCount:    len(extraction.Mods),
			RMLPath:     result.RMLPath,
			CSVPath:     result.CSVPath,
		}
		if _, err := c.journal.Record(ctx, conv); err != nil {
			return nil, fmt.Errorf("record conversion: %w", err)
		}
	}

	return result, nil
}

// ConvertBatch converts the saves in order while holding a lock file in the
// output directory, so two runs cannot interleave writes to the same
// destinations. The first failing save halts the batch; outputs already
// written for earlier saves stand. The returned results cover the saves
// converted before the failure.
func (c *Converter) ConvertBatch(ctx context.Context, savePaths []string, outputDir string) ([]*Result, error) {
	outputDir = c.outputDir(outputDir)
	if err := paths.CheckOutputDir(outputDir); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output directory lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is in use by another rimmodlist run", outputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	results := make([]*Result, 0, len(savePaths))
	for _, savePath := range savePaths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := c.ConvertFile(ctx, savePath, outputDir)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Converter) outputDir(override string) string {
	if override != "" {
		return override
	}
	if c.cfg != nil {
		return c.cfg.Paths.OutputDir
	}
	return override
}
