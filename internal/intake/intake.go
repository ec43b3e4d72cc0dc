// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intake extracts highlights from a batch of PDFs into text files,
// one per document, each carrying a YAML front matter header.
package intake

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-cleaner/internal/highlight"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// Extractor turns a PDF into its highlight extraction.
type Extractor interface {
	Extract(pdfPath string) (types.Extraction, error)
}

// ReaderExtractor adapts a highlight.Reader to Extractor.
type ReaderExtractor struct {
	Reader highlight.Reader
}

// Extract implements Extractor.
func (e ReaderExtractor) Extract(pdfPath string) (types.Extraction, error) {
	return highlight.ExtractFile(e.Reader, pdfPath)
}

// Status is the outcome of one file in a batch.
type Status int

const (
	// StatusExtracted means the PDF was read and its text file written.
	StatusExtracted Status = iota
	// StatusSkipped means the text file already existed.
	StatusSkipped
	// StatusFailed means extraction or writing failed.
	StatusFailed
)

// BatchResult holds the outcome of a batch intake run.
type BatchResult struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the number of PDFs processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Skipped + r.Failed
}

// HasFailures reports whether any PDF failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// frontMatter heads every intake file.
type frontMatter struct {
	SourcePDF   string   `yaml:"source_pdf"`
	Citations   []string `yaml:"citations"`
	ExtractedAt string   `yaml:"extracted_at"`
}

// now is replaced in tests.
var now = time.Now

// OutputPath returns the text file an intake of pdfPath writes.
func OutputPath(pdfPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(outDir, base+".txt")
}

// IntakeFile extracts one PDF into cfg.OutDir and reports its status on w.
// An existing output file is left alone unless cfg.Overwrite is set.
func IntakeFile(e Extractor, pdfPath string, cfg types.IntakeConfig, w io.Writer) Status {
	outPath := OutputPath(pdfPath, cfg.OutDir)
	base := filepath.Base(outPath)

	if !cfg.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped:   %s (already exists)\n", base)
			return StatusSkipped
		}
	}

	fail := func(err error) Status {
		slog.Debug("intake failed", "pdf", pdfPath, "error", err)
		fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
		return StatusFailed
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fail(err)
	}

	ext, err := e.Extract(pdfPath)
	if err != nil {
		return fail(err)
	}

	content, err := withFrontMatter(pdfPath, ext)
	if err != nil {
		return fail(err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fail(err)
	}

	fmt.Fprintf(w, "extracted: %s (%d highlights)\n", base, len(ext.Citations))
	return StatusExtracted
}

// IntakeBatch runs IntakeFile over every path, printing per-file status and
// a closing summary to w.
func IntakeBatch(e Extractor, pdfPaths []string, cfg types.IntakeConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pdfPaths {
		switch IntakeFile(e, p, cfg, w) {
		case StatusExtracted:
			result.Extracted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d skipped, %d failed (total: %d)\n",
		result.Extracted, result.Skipped, result.Failed, result.Total())
	return result
}

// ReadBody returns the extraction text of an intake file, without its
// front matter. Files without front matter are returned whole.
func ReadBody(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	s := string(data)
	rest, ok := strings.CutPrefix(s, "---\n")
	if !ok {
		return s, nil
	}
	_, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return s, nil
	}
	return body, nil
}

func withFrontMatter(pdfPath string, ext types.Extraction) (string, error) {
	fm, err := yaml.Marshal(frontMatter{
		SourcePDF:   pdfPath,
		Citations:   ext.Citations,
		ExtractedAt: now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n")
	b.WriteString(ext.Text)
	return b.String(), nil
}
