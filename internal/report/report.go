// Package report writes the downloadable scope report.
//
// The report is a fixed placeholder; no PDF is generated.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileName is the name of the downloaded report.
	FileName = "reporte.pdf"
	// PlaceholderContent is the literal body of the report.
	PlaceholderContent = "Simulacion PDF"

	dirPerm  = 0o750
	filePerm = 0o600
)

// WritePlaceholder writes FileName with PlaceholderContent into dir, creating
// dir if needed, and returns the written path. An empty dir means the current
// directory. An existing report is overwritten.
func WritePlaceholder(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(PlaceholderContent), filePerm); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
