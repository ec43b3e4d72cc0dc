// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RawHighlight is the text under one PDF highlight annotation, as returned
// by the PDF reader. PageIndex is zero-based.
type RawHighlight struct {
	PageIndex int    `json:"page_index" yaml:"page_index"`
	Text      string `json:"text" yaml:"text"`
}

// HighlightRegion is one processed highlight: reconstructed
// "line_number text" lines plus the derived line range.
type HighlightRegion struct {
	PageIndex int `json:"page_index" yaml:"page_index"`

	// Text is the reconstructed text, one transcript line per line.
	Text string `json:"text" yaml:"text"`

	// LineRange is "page:first-last", or just "page" when no line numbers
	// were found in the highlight.
	LineRange string `json:"line_range" yaml:"line_range"`

	// FirstLine and LastLine are the lowest and highest line numbers found.
	FirstLine *int `json:"first_line,omitempty" yaml:"first_line,omitempty"`
	LastLine  *int `json:"last_line,omitempty" yaml:"last_line,omitempty"`
}

// Extraction is the aggregate result of processing every highlight in a
// document.
type Extraction struct {
	// Text concatenates one "--- Page ..." block per region, in document order.
	Text string `json:"text" yaml:"text"`

	// Citations lists each region's LineRange in document order.
	Citations []string `json:"citations" yaml:"citations"`

	Regions []HighlightRegion `json:"regions" yaml:"regions"`
}
