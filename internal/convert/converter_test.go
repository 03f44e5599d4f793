package convert_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"rimmodlist/internal/convert"
	"rimmodlist/internal/history"
	"rimmodlist/internal/save"
	"rimmodlist/internal/testsupport"
)

func TestConvertFileWritesBothOutputs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	savePath := testsupport.WriteSampleSave(t, t.TempDir())

	journal, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer journal.Close()

	converter := convert.New(cfg, nil, journal)
	result, err := converter.ConvertFile(context.Background(), savePath, cfg.Paths.OutputDir)
	if err != nil {
		t.Fatalf("ConvertFile returned error: %v", err)
	}

	if !result.Written {
		t.Fatal("expected outputs to be written")
	}
	if result.GameVersion != testsupport.SampleGameVersion {
		t.Fatalf("unexpected game version: %q", result.GameVersion)
	}
	wantRML := filepath.Join(cfg.Paths.OutputDir, "Autosave-2.rml")
	wantCSV := filepath.Join(cfg.Paths.OutputDir, "Autosave-2.csv")
	if result.RMLPath != wantRML || result.CSVPath != wantCSV {
		t.Fatalf("unexpected output paths: %q, %q", result.RMLPath, result.CSVPath)
	}
	for _, path := range []string{wantRML, wantCSV} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected output at %s: %v", path, err)
		}
	}

	conversions, err := journal.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("journal List: %v", err)
	}
	if len(conversions) != 1 || conversions[0].ModCount != 79 {
		t.Fatalf("expected one journaled conversion with 79 mods, got %+v", conversions)
	}
}

func TestConvertFileIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())
	savePath := testsupport.WriteSampleSave(t, t.TempDir())
	converter := convert.New(cfg, nil, nil)

	if _, err := converter.ConvertFile(context.Background(), savePath, cfg.Paths.OutputDir); err != nil {
		t.Fatalf("first ConvertFile: %v", err)
	}
	firstRML := readFile(t, filepath.Join(cfg.Paths.OutputDir, "Autosave-2.rml"))
	firstCSV := readFile(t, filepath.Join(cfg.Paths.OutputDir, "Autosave-2.csv"))

	if _, err := converter.ConvertFile(context.Background(), savePath, cfg.Paths.OutputDir); err != nil {
		t.Fatalf("second ConvertFile: %v", err)
	}
	if readFile(t, filepath.Join(cfg.Paths.OutputDir, "Autosave-2.rml")) != firstRML {
		t.Fatal("expected byte-identical rml on rerun")
	}
	if readFile(t, filepath.Join(cfg.Paths.OutputDir, "Autosave-2.csv")) != firstCSV {
		t.Fatal("expected byte-identical csv on rerun")
	}
}

func TestConvertFileSkipsOutputsForEmptyModList(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())
	content := `<?xml version="1.0" encoding="utf-8"?>
<savegame>
  <meta>
    <gameVersion>1.4.0</gameVersion>
  </meta>
</savegame>`
	savePath := testsupport.WriteSave(t, filepath.Join(t.TempDir(), "vanilla.rws"), content)

	converter := convert.New(cfg, nil, nil)
	result, err := converter.ConvertFile(context.Background(), savePath, cfg.Paths.OutputDir)
	if err != nil {
		t.Fatalf("ConvertFile returned error: %v", err)
	}
	if result.Written {
		t.Fatal("expected no outputs for an empty mod list")
	}
	entries, err := os.ReadDir(cfg.Paths.OutputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir, found %d entries", len(entries))
	}
}

func TestConvertFileLeavesNoPartialOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())
	savePath := testsupport.WriteSave(t, filepath.Join(t.TempDir(), "broken.rws"), "this-is-not-an-xml")

	converter := convert.New(cfg, nil, nil)
	_, err := converter.ConvertFile(context.Background(), savePath, cfg.Paths.OutputDir)
	var malformed *save.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}

	entries, readErr := os.ReadDir(cfg.Paths.OutputDir)
	if readErr != nil {
		t.Fatalf("read output dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no partial output, found %d entries", len(entries))
	}
}

func TestConvertBatchHaltsOnFirstFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())
	saveDir := t.TempDir()
	good := testsupport.WriteSampleSave(t, saveDir)
	broken := testsupport.WriteSave(t, filepath.Join(saveDir, "broken.rws"), "nope")
	unreached := testsupport.WriteSave(t, filepath.Join(saveDir, "later.rws"),
		testsupport.SaveXML("1.4.0", testsupport.SampleMods()))

	converter := convert.New(cfg, nil, nil)
	results, err := converter.ConvertBatch(context.Background(), []string{good, broken, unreached}, cfg.Paths.OutputDir)
	if err == nil {
		t.Fatal("expected the broken save to fail the batch")
	}
	if len(results) != 1 {
		t.Fatalf("expected one completed conversion before the failure, got %d", len(results))
	}
	if _, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, "Autosave-2.rml")); statErr != nil {
		t.Fatalf("expected the first save's output to stand: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, "later.rml")); !os.IsNotExist(statErr) {
		t.Fatal("expected no output for saves after the failure")
	}
}

func TestConvertBatchRefusesLockedOutputDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())
	savePath := testsupport.WriteSampleSave(t, t.TempDir())

	held := flock.New(filepath.Join(cfg.Paths.OutputDir, ".rimmodlist.lock"))
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-acquire lock: locked=%v err=%v", locked, err)
	}
	defer held.Unlock()

	converter := convert.New(cfg, nil, nil)
	if _, err := converter.ConvertBatch(context.Background(), []string{savePath}, cfg.Paths.OutputDir); err == nil {
		t.Fatal("expected the held lock to abort the batch")
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
