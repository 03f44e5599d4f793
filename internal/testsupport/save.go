package testsupport

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"rimmodlist/internal/save"
)

// SampleGameVersion matches the version string of the reference save the
// original tooling was validated against.
const SampleGameVersion = "1.4.3704 rev898"

// SampleMods returns the 79-mod fixture list. The first entry is the
// well-known Harmony mod; the rest are synthetic but deterministic.
func SampleMods() []save.ModRecord {
	mods := make([]save.ModRecord, 0, 79)
	mods = append(mods, save.ModRecord{ID: "brrainz.harmony", SteamID: "2009463077", Name: "Harmony"})
	for i := 1; i < 79; i++ {
		mods = append(mods, save.ModRecord{
			ID:      fmt.Sprintf("author%03d.mod%03d", i, i),
			SteamID: strconv.Itoa(2100000000 + i),
			Name:    fmt.Sprintf("Test Mod %03d", i),
		})
	}
	return mods
}

// SaveXML renders a minimal but realistic save document carrying the given
// version and mod lists, padded with the ignorable siblings a real save has.
func SaveXML(version string, mods []save.ModRecord) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString("<savegame>\n")
	b.WriteString("  <meta>\n")
	fmt.Fprintf(&b, "    <gameVersion>%s</gameVersion>\n", version)
	b.WriteString("    <modIds>\n")
	for _, mod := range mods {
		fmt.Fprintf(&b, "      <li>%s</li>\n", mod.ID)
	}
	b.WriteString("    </modIds>\n")
	b.WriteString("    <modSteamIds>\n")
	for _, mod := range mods {
		fmt.Fprintf(&b, "      <li>%s</li>\n", mod.SteamID)
	}
	b.WriteString("    </modSteamIds>\n")
	b.WriteString("    <modNames>\n")
	for _, mod := range mods {
		fmt.Fprintf(&b, "      <li>%s</li>\n", mod.Name)
	}
	b.WriteString("    </modNames>\n")
	b.WriteString("  </meta>\n")
	b.WriteString("  <game>\n    <currentMapIndex>0</currentMapIndex>\n  </game>\n")
	b.WriteString("</savegame>\n")
	return b.String()
}

// WriteSampleSave writes the 79-mod fixture save into dir and returns its
// path.
func WriteSampleSave(t testing.TB, dir string) string {
	t.Helper()
	return WriteSave(t, filepath.Join(dir, "Autosave-2.rws"), SaveXML(SampleGameVersion, SampleMods()))
}

// WriteSave writes arbitrary save content to path and returns path.
func WriteSave(t testing.TB, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write save %s: %v", path, err)
	}
	return path
}
