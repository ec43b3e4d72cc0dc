// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParsedLine is one transcript line after its leading line number, if any,
// has been split off.
type ParsedLine struct {
	// LineNumber is nil when the line carried no leading integer.
	LineNumber *int `json:"line_number,omitempty" yaml:"line_number,omitempty"`

	Text string `json:"text" yaml:"text"`
}

// PhraseGroup is one continuous block of speech: a Q/A turn, an objection,
// or narration, accumulated over one or more input lines.
type PhraseGroup struct {
	// Text carries its own leading newline (and tab for Q/A turns).
	Text string `json:"text" yaml:"text"`

	// Capitalized marks objection or non-party speech; Text is upper-cased.
	Capitalized bool `json:"capitalized,omitempty" yaml:"capitalized,omitempty"`
}

// Output holds both formatted results for one input text.
type Output struct {
	// Presentation is the PowerPoint-ready script.
	Presentation string `json:"presentation" yaml:"presentation"`

	// Designations is the newline-joined, sorted citation list.
	Designations string `json:"designations" yaml:"designations"`

	// Groups are the closed phrase groups before output filtering.
	Groups []PhraseGroup `json:"groups" yaml:"groups"`

	// FirstLine and LastLine are the first and most recent transcript line
	// numbers observed; nil when none was seen.
	FirstLine *int `json:"first_line,omitempty" yaml:"first_line,omitempty"`
	LastLine  *int `json:"last_line,omitempty" yaml:"last_line,omitempty"`
}
