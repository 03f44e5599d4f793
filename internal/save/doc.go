// Package save parses RimWorld save files (.rws) and exposes the mod
// metadata recorded in their meta block.
//
// A save's meta element carries the game version plus three parallel lists
// (modIds, modSteamIds, modNames) describing the mods active when the save
// was written. Extract reconciles those lists into ModRecord values in
// document order and reports malformed or structurally broken saves with
// typed errors so callers can tell "not XML at all" apart from "XML but not
// a save".
package save
