// Package config loads, normalizes, and validates rimmodlist configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the RIMMODLIST_OUTPUT_DIR
// environment fallback. The Config type centralizes every knob the CLI
// needs: output and log directories, the history journal location, and the
// logging format.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, canonical log formats, and clear validation
// errors.
package config
