// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// Result is the state left after every input line has been processed.
type Result struct {
	Groups []types.PhraseGroup

	// FirstLine and LastLine are nil when no line number was observed.
	FirstLine *int
	LastLine  *int
}

// Process runs the line pipeline over text: split, substitute, detect line
// numbers, filter, assemble.
func Process(text string, cfg types.FormatConfig, t types.RuleTables) Result {
	var r Result
	a := NewAssembler(cfg, t)

	for _, raw := range SplitLines(text) {
		line := ReplaceWords(strings.TrimSpace(raw), t.Substitutions)

		parsed := DetectLineNumber(line)
		if n := parsed.LineNumber; n != nil {
			if r.FirstLine == nil {
				first := *n
				r.FirstLine = &first
			}
			last := *n
			r.LastLine = &last
		}

		line, keep := FilterLine(parsed.Text, cfg, t)
		if !keep {
			continue
		}
		a.Add(line)
	}

	r.Groups = a.Close()
	return r
}

// Format returns the presentation script for text.
func Format(text string, cfg types.FormatConfig, t types.RuleTables) string {
	r := Process(text, cfg, t)
	return FormatGroups(r.Groups, r.FirstLine, r.LastLine, cfg)
}

// FormatGroups joins the groups and appends the citation footer. When
// objections are hidden, capitalized groups and fully upper-case groups are
// left out.
func FormatGroups(groups []types.PhraseGroup, first, last *int, cfg types.FormatConfig) string {
	var b strings.Builder
	for _, g := range groups {
		if cfg.HideObjections && (g.Capitalized || isUpper(g.Text)) {
			continue
		}
		b.WriteString(g.Text)
	}
	out := strings.TrimSpace(b.String())

	if cfg.ShowLabel && first != nil && last != nil {
		out += fmt.Sprintf("\n\n%s Tr. Pg. __, Ln. %d-%d", cfg.LabelText, *first, *last)
	}
	return out
}

// isUpper reports whether s has at least one cased letter and no lower-case
// letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
