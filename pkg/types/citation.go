// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Citation identifies a transcript excerpt by page and line range.
// It serializes as "page:start-end".
type Citation struct {
	Page      int `json:"page" yaml:"page"`
	StartLine int `json:"start_line" yaml:"start_line"`
	EndLine   int `json:"end_line" yaml:"end_line"`
}

func (c Citation) String() string {
	return fmt.Sprintf("%d:%d-%d", c.Page, c.StartLine, c.EndLine)
}

// Less orders citations by page, then start line. End line is not part of
// the key.
func (c Citation) Less(o Citation) bool {
	if c.Page != o.Page {
		return c.Page < o.Page
	}
	return c.StartLine < o.StartLine
}

// ParseCitation parses "page:start-end".
func ParseCitation(s string) (Citation, error) {
	page, lines, ok := strings.Cut(s, ":")
	if !ok {
		return Citation{}, fmt.Errorf("citation %q: missing ':'", s)
	}
	start, end, ok := strings.Cut(lines, "-")
	if !ok {
		return Citation{}, fmt.Errorf("citation %q: missing '-'", s)
	}

	var c Citation
	var err error
	if c.Page, err = strconv.Atoi(page); err != nil {
		return Citation{}, fmt.Errorf("citation %q: page: %w", s, err)
	}
	if c.StartLine, err = strconv.Atoi(start); err != nil {
		return Citation{}, fmt.Errorf("citation %q: start line: %w", s, err)
	}
	if c.EndLine, err = strconv.Atoi(end); err != nil {
		return Citation{}, fmt.Errorf("citation %q: end line: %w", s, err)
	}
	return c, nil
}
