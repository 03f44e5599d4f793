// Package logging builds the slog loggers used across rimmodlist.
//
// Two handler flavours are supported: a human-oriented console handler with
// terminal-aware coloring, and a JSON handler for machine consumption. Both
// honour the configured level and can tee output to a log file under the
// configured log directory.
package logging
