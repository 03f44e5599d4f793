// Package history persists a journal of completed conversions in SQLite.
//
// Each converted save file produces one row recording where the save came
// from, which game version it carried, how many mods it listed, and where
// the outputs were written. Saves with zero mods are journaled with NULL
// output paths since the emitters skip writing for them.
package history
