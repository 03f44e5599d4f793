package save

// ModRecord describes one mod referenced by a save file. All fields are
// copied verbatim from the document; SteamID is empty for non-Steam mods.
type ModRecord struct {
	ID      string
	SteamID string
	Name    string
}

// Extraction bundles the game version with the mods found in a save file.
// Mods keeps the order of the save's modIds list.
type Extraction struct {
	GameVersion string
	Mods        []ModRecord
}
