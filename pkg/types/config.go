// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ReportFormat selects how the unmatched-word report is written.
type ReportFormat string

const (
	FormatText ReportFormat = "text"
	FormatJSON ReportFormat = "json"
	FormatYAML ReportFormat = "yaml"
)

// ParseReportFormat validates s as a ReportFormat. An empty string selects text.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch f := ReportFormat(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, json, or yaml", s)
	}
}

// CheckerConfig holds settings for a single check run.
type CheckerConfig struct {
	// CollectionPath is the Anki collection file (collection.anki2).
	CollectionPath string `json:"collection" yaml:"collection" mapstructure:"collection"`

	// InputPath is the Duolingo export file. Empty or "-" reads standard input.
	InputPath string `json:"input" yaml:"input" mapstructure:"input"`

	// Format selects the report output: text, json, or yaml.
	Format ReportFormat `json:"format" yaml:"format" mapstructure:"format"`

	// PartsOfSpeech restricts the report to these word classes. Empty keeps all.
	PartsOfSpeech []string `json:"pos,omitempty" yaml:"pos,omitempty" mapstructure:"pos"`

	// SkipEmptyFields drops empty note fields from the known-word index.
	SkipEmptyFields bool `json:"skip_empty" yaml:"skip_empty" mapstructure:"skip_empty"`

	// MaxFieldLength drops note fields longer than this many runes from the
	// known-word index. Zero disables the limit.
	MaxFieldLength int `json:"max_field_length" yaml:"max_field_length" mapstructure:"max_field_length"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// File, when set, also writes JSON log lines to a rotated file.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// JSON switches the console encoder from human-readable to JSON.
	JSON bool `json:"json" yaml:"json" mapstructure:"json"`
}
