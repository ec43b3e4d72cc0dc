// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfsource reads the text under highlight annotations in a PDF.
// The document is validated with pdfcpu; annotations and positioned glyphs
// come from ledongthuc/pdf.
package pdfsource

import (
	"fmt"
	"os"
	"sync"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

const highlightSubtype = "Highlight"

var disableConfigDir sync.Once

// Reader implements highlight.Reader for PDF files.
type Reader struct {
	// SkipValidation reads the document without the pdfcpu validation pass.
	SkipValidation bool
}

// New returns a Reader that validates documents before reading them.
func New() *Reader {
	disableConfigDir.Do(api.DisableConfigDir)
	return &Reader{}
}

// ReadHighlights returns one entry per highlight annotation, page by page in
// annotation order. PageIndex is zero-based.
func (r *Reader) ReadHighlights(path string) ([]types.RawHighlight, error) {
	if !r.SkipValidation {
		if _, err := validate(path); err != nil {
			return nil, err
		}
	}

	f, doc, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var out []types.RawHighlight
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		hs, err := pageHighlights(page, i-1)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		out = append(out, hs...)
	}
	return out, nil
}

// validate reads the whole document through pdfcpu and returns its page
// count.
func validate(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	if ctx.PageCount == 0 {
		return 0, fmt.Errorf("pdf has no pages")
	}
	return ctx.PageCount, nil
}

// pageHighlights returns the clipped text of every highlight on page. The
// page content is decoded once, and only when the page has a highlight.
func pageHighlights(page pdflib.Page, pageIndex int) ([]types.RawHighlight, error) {
	annots := page.V.Key("Annots")
	n := annots.Len()
	if n == 0 {
		return nil, nil
	}

	var (
		glyphs []pdflib.Text
		loaded bool
		out    []types.RawHighlight
	)
	for j := 0; j < n; j++ {
		a := annots.Index(j)
		if a.Key("Subtype").Name() != highlightSubtype {
			continue
		}
		box, ok := readRect(a.Key("Rect"))
		if !ok {
			continue
		}
		if !loaded {
			var err error
			if glyphs, err = pageGlyphs(page); err != nil {
				return nil, err
			}
			loaded = true
		}
		out = append(out, types.RawHighlight{
			PageIndex: pageIndex,
			Text:      clipText(glyphs, box),
		})
	}
	return out, nil
}

// pageGlyphs decodes the page content stream. The PDF library panics on
// malformed streams; the panic is returned as an error.
func pageGlyphs(page pdflib.Page) (glyphs []pdflib.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoding page content: %v", r)
		}
	}()
	return page.Content().Text, nil
}

func readRect(v pdflib.Value) (rect, bool) {
	if v.Kind() != pdflib.Array || v.Len() != 4 {
		return rect{}, false
	}
	return newRect(
		v.Index(0).Float64(),
		v.Index(1).Float64(),
		v.Index(2).Float64(),
		v.Index(3).Float64(),
	), true
}
