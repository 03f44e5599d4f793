// Package paths derives and validates the output locations for one save
// file conversion.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Outputs holds the destination paths derived for one save file.
type Outputs struct {
	RML string
	CSV string
}

// NotFoundError reports a save file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("save file not found: %s", e.Path)
}

// ConfigError reports an unusable output directory.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("output directory %s: %s", e.Path, e.Reason)
}

// Resolve checks that savePath exists and outputDir is a directory, then
// derives the .rml and .csv destinations from the save's base name with its
// extension stripped.
func Resolve(savePath, outputDir string) (Outputs, error) {
	if _, err := os.Stat(savePath); err != nil {
		if os.IsNotExist(err) {
			return Outputs{}, &NotFoundError{Path: savePath}
		}
		return Outputs{}, fmt.Errorf("stat save file: %w", err)
	}
	if err := CheckOutputDir(outputDir); err != nil {
		return Outputs{}, err
	}

	base := filepath.Base(savePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return Outputs{
		RML: filepath.Join(outputDir, stem+".rml"),
		CSV: filepath.Join(outputDir, stem+".csv"),
	}, nil
}

// CheckOutputDir verifies the output directory exists and is a directory.
func CheckOutputDir(outputDir string) error {
	info, err := os.Stat(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ConfigError{Path: outputDir, Reason: "does not exist"}
		}
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return &ConfigError{Path: outputDir, Reason: "not a directory"}
	}
	return nil
}
