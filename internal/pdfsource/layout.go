// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfsource

import (
	"math"
	"sort"
	"strings"
	"unicode"

	pdflib "github.com/ledongthuc/pdf"
)

const (
	// defaultFontSize stands in for glyphs whose size could not be decoded.
	defaultFontSize = 10.0

	// rowTolerance is the baseline drift, in font sizes, allowed within a row.
	rowTolerance = 0.5

	// wordGap is the horizontal gap, in font sizes, that reads as a space.
	wordGap = 0.15

	// numberColumnGap is the gap, in font sizes, between a leading line
	// number and the text after it that puts the number on its own line.
	numberColumnGap = 0.9
)

// rect is an annotation rectangle in page space, normalized so x0 <= x1
// and y0 <= y1.
type rect struct {
	x0, y0, x1, y1 float64
}

func newRect(ax, ay, bx, by float64) rect {
	return rect{
		x0: math.Min(ax, bx), y0: math.Min(ay, by),
		x1: math.Max(ax, bx), y1: math.Max(ay, by),
	}
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

// clipText rebuilds the text of the glyphs whose centre lies inside box.
// Rows run top to bottom and glyphs left to right. A leading line number
// set apart from the text is emitted on its own line, the way transcript
// pages lay out their line-number column. Every line ends with a newline.
func clipText(glyphs []pdflib.Text, box rect) string {
	var in []pdflib.Text
	for _, g := range glyphs {
		size := fontSize(g)
		if box.contains(g.X+g.W/2, g.Y+size/3) {
			in = append(in, g)
		}
	}

	var b strings.Builder
	for _, row := range groupRows(in) {
		for _, line := range rowLines(row) {
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// groupRows buckets glyphs by baseline, top row first, each row sorted by x.
func groupRows(glyphs []pdflib.Text) [][]pdflib.Text {
	sorted := append([]pdflib.Text(nil), glyphs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdflib.Text
	var baseline float64
	for _, g := range sorted {
		n := len(rows)
		if n > 0 && math.Abs(g.Y-baseline) <= rowTolerance*fontSize(g) {
			rows[n-1] = append(rows[n-1], g)
			continue
		}
		rows = append(rows, []pdflib.Text{g})
		baseline = g.Y
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// rowLines renders one row, splitting off a leading line number when a
// visible gap separates it from the rest of the row.
func rowLines(row []pdflib.Text) []string {
	i := 0
	for i < len(row) && isDigits(row[i].S) {
		i++
	}
	if i > 0 && i < len(row) {
		end := row[i-1].X + row[i-1].W
		j := i
		for j < len(row) && strings.TrimSpace(row[j].S) == "" {
			j++
		}
		if j < len(row) && row[j].X-end >= numberColumnGap*fontSize(row[j]) {
			return []string{joinGlyphs(row[:i]), joinGlyphs(row[j:])}
		}
	}
	return []string{joinGlyphs(row)}
}

// joinGlyphs concatenates glyph strings, inserting a space wherever the
// horizontal gap reads as one.
func joinGlyphs(row []pdflib.Text) string {
	var b strings.Builder
	for i, g := range row {
		if i > 0 {
			prev := row[i-1]
			gap := g.X - (prev.X + prev.W)
			if gap > wordGap*fontSize(g) && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return strings.TrimSpace(b.String())
}

func fontSize(g pdflib.Text) float64 {
	if g.FontSize <= 0 {
		return defaultFontSize
	}
	return g.FontSize
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
