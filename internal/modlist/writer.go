// Package modlist writes the game's mod-list import format (.rml).
package modlist

import (
	"encoding/xml"
	"fmt"
	"os"

	"rimmodlist/internal/save"
)

// The importer expects the mod ids and names twice: once in the meta block
// and once under modList. Only meta carries the Steam ids.
type document struct {
	XMLName xml.Name `xml:"savedModList"`
	Meta    meta     `xml:"meta"`
	ModList modList  `xml:"modList"`
}

type meta struct {
	GameVersion string `xml:"gameVersion"`
	ModIDs      items  `xml:"modIds"`
	ModSteamIDs items  `xml:"modSteamIds"`
	ModNames    items  `xml:"modNames"`
}

type modList struct {
	IDs   items `xml:"ids"`
	Names items `xml:"names"`
}

type items struct {
	Items []string `xml:"li"`
}

// Write serializes the mod list to outputPath in the game's import format,
// overwriting any existing file. A save with zero mods produces no file at
// all; an empty mod-list file would only mislead the importer.
func Write(gameVersion string, mods []save.ModRecord, outputPath string) error {
	if len(mods) == 0 {
		return nil
	}

	doc := document{Meta: meta{GameVersion: gameVersion}}
	for _, mod := range mods {
		doc.Meta.ModIDs.Items = append(doc.Meta.ModIDs.Items, mod.ID)
		doc.Meta.ModSteamIDs.Items = append(doc.Meta.ModSteamIDs.Items, mod.SteamID)
		doc.Meta.ModNames.Items = append(doc.Meta.ModNames.Items, mod.Name)
		doc.ModList.IDs.Items = append(doc.ModList.IDs.Items, mod.ID)
		doc.ModList.Names.Items = append(doc.ModList.Names.Items, mod.Name)
	}

	encoded, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mod list: %w", err)
	}

	payload := make([]byte, 0, len(xml.Header)+len(encoded)+1)
	payload = append(payload, xml.Header...)
	payload = append(payload, encoded...)
	payload = append(payload, '\n')

	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("write mod list: %w", err)
	}
	return nil
}
