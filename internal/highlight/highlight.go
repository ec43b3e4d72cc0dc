// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlight rebuilds transcript lines from the text under PDF
// highlight annotations and derives a page:line-range citation for each.
package highlight

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// ErrExtraction marks a document that could not be opened or read.
var ErrExtraction = errors.New("highlight extraction failed")

// Reader returns the highlighted text of a document, one entry per
// highlight annotation, in discovery order.
type Reader interface {
	ReadHighlights(path string) ([]types.RawHighlight, error)
}

// numberLineRe matches a line holding nothing but a transcript line number.
var numberLineRe = regexp.MustCompile(`^(\d+)\s*$`)

// ProcessRegion rebuilds one highlight. Each number-only line is joined with
// the line after it as "{n} {text}"; a number line with nothing after it is
// kept on its own. Lines that follow a number line are consumed by the join;
// every other line is kept as-is. The region's line range spans the lowest
// and highest line numbers seen.
func ProcessRegion(h types.RawHighlight) types.HighlightRegion {
	lines := strings.Split(h.Text, "\n")
	region := types.HighlightRegion{PageIndex: h.PageIndex}

	var out []string
	for i, line := range lines {
		if n, ok := lineNumber(line); ok {
			if region.FirstLine == nil || n < *region.FirstLine {
				first := n
				region.FirstLine = &first
			}
			if region.LastLine == nil || n > *region.LastLine {
				last := n
				region.LastLine = &last
			}

			if i+1 < len(lines) {
				out = append(out, fmt.Sprintf("%d %s", n, lines[i+1]))
			} else {
				out = append(out, line)
			}
			continue
		}
		if i == 0 {
			out = append(out, line)
			continue
		}
		if _, prev := lineNumber(lines[i-1]); !prev {
			out = append(out, line)
		}
	}

	region.Text = strings.Join(out, "\n")
	region.LineRange = lineRange(h.PageIndex, region.FirstLine, region.LastLine)
	return region
}

// Extract processes every highlight and assembles the aggregate text and
// citation list.
func Extract(highlights []types.RawHighlight) types.Extraction {
	var b strings.Builder
	ext := types.Extraction{
		Citations: make([]string, 0, len(highlights)),
		Regions:   make([]types.HighlightRegion, 0, len(highlights)),
	}

	for _, h := range highlights {
		region := ProcessRegion(h)
		fmt.Fprintf(&b, "\n--- Page %s: \n%s ---\n", region.LineRange, region.Text)
		ext.Citations = append(ext.Citations, region.LineRange)
		ext.Regions = append(ext.Regions, region)
	}

	ext.Text = b.String()
	return ext
}

// ExtractFile reads path through r and extracts its highlights. Read
// failures wrap ErrExtraction.
func ExtractFile(r Reader, path string) (types.Extraction, error) {
	highlights, err := r.ReadHighlights(path)
	if err != nil {
		return types.Extraction{}, fmt.Errorf("%w: %s: %w", ErrExtraction, path, err)
	}
	return Extract(highlights), nil
}

func lineNumber(line string) (int, bool) {
	m := numberLineRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func lineRange(pageIndex int, first, last *int) string {
	page := pageIndex + 1
	if first == nil || last == nil {
		return strconv.Itoa(page)
	}
	return fmt.Sprintf("%d:%d-%d", page, *first, *last)
}
