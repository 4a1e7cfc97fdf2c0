package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/ecotracks/ecotracks/internal/config"
)

// ErrUnsupportedFormat is returned for --output values other than table,
// json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

const tabPadding = 2

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2) //nolint:mnd // Two-space indent.
	return enc.Encode(v)
}

// writeStructured writes v as JSON or YAML, or calls table for the table
// format.
func writeStructured(w io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, v)
	case config.FormatYAML:
		return writeYAML(w, v)
	case config.FormatTable:
		return table(w)
	default:
		return fmt.Errorf("%w: %q (use table, json or yaml)", ErrUnsupportedFormat, format)
	}
}
