// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript turns raw deposition-transcript lines into a
// presentation script: line numbers are split off and tracked, attribution
// lines are filtered, and the surviving lines are assembled into Q/A turns,
// objections, and narration.
package transcript

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// leadingNumberRe matches a transcript line number at the start of a line.
// The whitespace after the digits is optional, so "12Q." splits as 12, "Q.".
var leadingNumberRe = regexp.MustCompile(`^(\d+)\s*`)

// SplitLines splits text on newlines. Empty text yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// ReplaceWords applies each substitution, in order, to every occurrence in
// line.
func ReplaceWords(line string, subs []types.Substitution) string {
	for _, s := range subs {
		if strings.Contains(line, s.From) {
			line = strings.ReplaceAll(line, s.From, s.To)
		}
	}
	return line
}

// DetectLineNumber splits a leading transcript line number off line. When
// there is none, LineNumber is nil and Text is line unchanged.
func DetectLineNumber(line string) types.ParsedLine {
	m := leadingNumberRe.FindStringSubmatchIndex(line)
	if m == nil {
		return types.ParsedLine{Text: line}
	}
	n, err := strconv.Atoi(line[m[2]:m[3]])
	if err != nil {
		// Digit runs that overflow int are not line numbers.
		return types.ParsedLine{Text: line}
	}
	return types.ParsedLine{
		LineNumber: &n,
		Text:       strings.TrimLeftFunc(line[m[1]:], unicode.IsSpace),
	}
}

// FilterLine applies the fixed line rules. It reports false when the line
// must be dropped before assembly: an attribution line ("BY MR. JONES:")
// while names are hidden. A page-break marker line is wrapped in blank lines.
func FilterLine(line string, cfg types.FormatConfig, t types.RuleTables) (string, bool) {
	if cfg.HideNames && isAttribution(line, t) {
		return "", false
	}
	if t.PageBreakMarker != "" && strings.HasPrefix(line, t.PageBreakMarker) {
		return "\n\n" + line + "\n", true
	}
	return line, true
}

func isAttribution(line string, t types.RuleTables) bool {
	if !strings.Contains(line, t.NameSeparator) {
		return false
	}
	_, ok := matchPrefix(line, t.NamePrefixes)
	return ok
}

// matchPrefix returns the first prefix in list that line starts with.
func matchPrefix(line string, list []string) (string, bool) {
	for _, p := range list {
		if strings.HasPrefix(line, p) {
			return p, true
		}
	}
	return "", false
}
