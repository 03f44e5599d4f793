package csvexport_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rimmodlist/internal/csvexport"
	"rimmodlist/internal/save"
)

func TestWriteEmptyListWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := csvexport.Write(nil, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file at %s, stat err = %v", path, err)
	}
}

func TestWriteSortsByModID(t *testing.T) {
	mods := []save.ModRecord{
		{ID: "zed.mod", SteamID: "3", Name: "Zed"},
		{ID: "abc.mod", SteamID: "1", Name: "Abc"},
		{ID: "mid.mod", SteamID: "", Name: "Mid"},
	}
	path := filepath.Join(t.TempDir(), "sorted.csv")

	if err := csvexport.Write(mods, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	rows := readCSV(t, path)
	want := [][]string{
		{"mod_id", "mod_name", "mod_steam_id"},
		{"abc.mod", "Abc", "1"},
		{"mid.mod", "Mid", ""},
		{"zed.mod", "Zed", "3"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, row := range want {
		if strings.Join(rows[i], "|") != strings.Join(row, "|") {
			t.Fatalf("row %d: got %v want %v", i, rows[i], row)
		}
	}
}

func TestWriteKeepsInputOrderOnEqualIDs(t *testing.T) {
	mods := []save.ModRecord{
		{ID: "dup.mod", SteamID: "2", Name: "Second Copy"},
		{ID: "aaa.mod", SteamID: "1", Name: "First"},
		{ID: "dup.mod", SteamID: "3", Name: "Third Copy"},
	}
	path := filepath.Join(t.TempDir(), "ties.csv")

	if err := csvexport.Write(mods, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	rows := readCSV(t, path)
	if rows[2][1] != "Second Copy" || rows[3][1] != "Third Copy" {
		t.Fatalf("expected stable ordering for equal ids, got %v", rows)
	}
}

func TestWriteDoesNotMutateInput(t *testing.T) {
	mods := []save.ModRecord{
		{ID: "zed.mod", SteamID: "3", Name: "Zed"},
		{ID: "abc.mod", SteamID: "1", Name: "Abc"},
	}
	path := filepath.Join(t.TempDir(), "copy.csv")

	if err := csvexport.Write(mods, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if mods[0].ID != "zed.mod" {
		t.Fatal("Write reordered the caller's slice")
	}
}

func TestWriteQuotesDelimiterInFields(t *testing.T) {
	mods := []save.ModRecord{
		{ID: "odd.mod", SteamID: "1", Name: "Name; with delimiter"},
	}
	path := filepath.Join(t.TempDir(), "quoted.csv")

	if err := csvexport.Write(mods, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	rows := readCSV(t, path)
	if rows[1][1] != "Name; with delimiter" {
		t.Fatalf("expected field to survive quoting, got %q", rows[1][1])
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}
