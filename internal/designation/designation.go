// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package designation pulls page:start-end citation tokens out of arbitrary
// text and orders them for import into a litigation-support tool.
package designation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// tokenRe matches a whole whitespace-delimited token such as "12:4-9:".
// The trailing colon is required; it is how extracted highlight blocks
// label their range ("--- Page 12:4-9: ").
var tokenRe = regexp.MustCompile(`^\d+:\d+-\d+:$`)

// Designation is one citation token found in text.
type Designation struct {
	// Raw is the token with its trailing colon removed.
	Raw      string
	Citation types.Citation
}

// Parse returns every citation token in text, in input order. Duplicates
// are kept.
func Parse(text string) []Designation {
	var out []Designation
	for _, tok := range strings.Fields(text) {
		if !tokenRe.MatchString(tok) {
			continue
		}
		raw := strings.TrimRight(tok, ":")
		c, err := types.ParseCitation(raw)
		if err != nil {
			// Only reachable when a number overflows int.
			continue
		}
		out = append(out, Designation{Raw: raw, Citation: c})
	}
	return out
}

// Sort orders designations by page, then start line. Ties keep input order.
func Sort(ds []Designation) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Citation.Less(ds[j].Citation)
	})
}

// Format returns the sorted designations found in text, one per line.
func Format(text string) string {
	ds := Parse(text)
	Sort(ds)

	raws := make([]string, len(ds))
	for i, d := range ds {
		raws[i] = d.Raw
	}
	return strings.Join(raws, "\n")
}
