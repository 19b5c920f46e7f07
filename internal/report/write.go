// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vocab-checker/pkg/types"
)

// Write renders rep to w in the given format.
func Write(w io.Writer, rep Report, format types.ReportFormat) error {
	switch format {
	case types.FormatText, "":
		return WriteText(w, rep)
	case types.FormatJSON:
		return WriteJSON(w, rep)
	case types.FormatYAML:
		return WriteYAML(w, rep)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

// WriteText writes one line per unmatched record followed by a line with
// the unmatched count.
func WriteText(w io.Writer, rep Report) error {
	for _, r := range rep.Unmatched {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, rep.Count)
	return err
}

// WriteJSON writes rep as an indented JSON document.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteYAML writes rep as a YAML document.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
