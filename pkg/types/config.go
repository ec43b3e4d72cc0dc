// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// FlushPolicy selects when a trigger line closes the phrase being assembled.
type FlushPolicy string

const (
	// FlushUniform flushes the open phrase on every trigger kind unless the
	// phrase is a capitalized objection and objections are hidden.
	FlushUniform FlushPolicy = "uniform"

	// FlushQAOnly flushes only on Q/A triggers and only when the open phrase
	// is not capitalized. Objection and non-party triggers replace the open
	// phrase without flushing it.
	FlushQAOnly FlushPolicy = "qa-only"
)

// DefaultLabelText is the witness label shown in the citation footer.
const DefaultLabelText = "Witness Dep."

// FormatConfig holds the user-facing switches for the presentation pipeline.
type FormatConfig struct {
	// HideNames drops "BY MR. X:" and "QUESTIONS BY X:" attribution lines.
	HideNames bool `json:"hide_names" yaml:"hide_names"`

	// HideObjections suppresses objection and non-party speech.
	HideObjections bool `json:"hide_objections" yaml:"hide_objections"`

	// ShowLabel appends the "{label} Tr. Pg. __, Ln. a-b" footer.
	ShowLabel bool `json:"show_label" yaml:"show_label"`

	// LabelText is the deposition name used in the footer.
	LabelText string `json:"label" yaml:"label"`

	// FlushPolicy selects the assembler's flush-suppression rule.
	FlushPolicy FlushPolicy `json:"flush_policy" yaml:"flush_policy"`
}

// DefaultFormatConfig returns the switches the desktop tool started with:
// names and objections hidden, footer off.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		HideNames:      true,
		HideObjections: true,
		LabelText:      DefaultLabelText,
		FlushPolicy:    FlushUniform,
	}
}

// Validate checks the flush policy and fills in an empty one.
func (c *FormatConfig) Validate() error {
	switch c.FlushPolicy {
	case "":
		c.FlushPolicy = FlushUniform
	case FlushUniform, FlushQAOnly:
	default:
		return fmt.Errorf("unsupported flush policy %q: use %s or %s", c.FlushPolicy, FlushUniform, FlushQAOnly)
	}
	return nil
}

// Substitution replaces every occurrence of From with To before a line is
// classified.
type Substitution struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// RuleTables holds the literal prefixes the line pipeline matches on.
type RuleTables struct {
	// QATriggers start a question or answer turn ("Q.", "A.").
	QATriggers []string `json:"qa_triggers" yaml:"qa_triggers"`

	// ObjectionTriggers start counsel speech ("MR", "MS", ...).
	ObjectionTriggers []string `json:"objection_triggers" yaml:"objection_triggers"`

	// NonPartyTriggers start speech by someone who is neither counsel nor
	// the witness ("THE VIDEOGRAPHER").
	NonPartyTriggers []string `json:"non_party_triggers" yaml:"non_party_triggers"`

	// Substitutions run in order on every line before classification.
	Substitutions []Substitution `json:"substitutions" yaml:"substitutions"`

	// PageBreakMarker marks a page separator line ("--- Page").
	PageBreakMarker string `json:"page_break_marker" yaml:"page_break_marker"`

	// NamePrefixes start attribution lines dropped when names are hidden.
	NamePrefixes []string `json:"name_prefixes" yaml:"name_prefixes"`

	// NameSeparator must appear on an attribution line for it to be dropped.
	NameSeparator string `json:"name_separator" yaml:"name_separator"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`
}

// IntakeConfig holds settings for batch PDF highlight intake.
type IntakeConfig struct {
	// OutDir receives one <name>.txt file per PDF.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Overwrite re-extracts PDFs whose output already exists.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}

// WatchConfig holds settings for the transcript file watcher.
type WatchConfig struct {
	// Path is the transcript text file to watch.
	Path string `json:"path" yaml:"path"`

	// OutDir receives the .powerpoint.txt and .designations.txt outputs.
	// Empty means the directory of Path.
	OutDir string `json:"out_dir" yaml:"out_dir"`
}
