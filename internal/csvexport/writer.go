// Package csvexport writes the semicolon-delimited CSV view of a mod list.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"rimmodlist/internal/save"
)

var header = []string{"mod_id", "mod_name", "mod_steam_id"}

// Write exports the mods to outputPath sorted ascending by mod id,
// overwriting any existing file. Mods sharing an id keep their relative
// input order. An empty mod list produces no file.
func Write(mods []save.ModRecord, outputPath string) error {
	if len(mods) == 0 {
		return nil
	}

	sorted := make([]save.ModRecord, len(mods))
	copy(sorted, mods)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = ';'
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, mod := range sorted {
		if err := writer.Write([]string{mod.ID, mod.Name, mod.SteamID}); err != nil {
			_ = file.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return file.Close()
}
