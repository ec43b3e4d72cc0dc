// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intake

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-cleaner/internal/designation"
	"github.com/pdiddy/transcript-cleaner/internal/highlight"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// fakeExtractor returns canned extractions keyed by path, or failures.
type fakeExtractor struct {
	results map[string]types.Extraction
	fail    map[string]error
	calls   int
}

func (f *fakeExtractor) Extract(pdfPath string) (types.Extraction, error) {
	f.calls++
	if err, ok := f.fail[pdfPath]; ok {
		return types.Extraction{}, err
	}
	return f.results[pdfPath], nil
}

func fixedClock(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func smithExtraction() types.Extraction {
	return highlight.Extract([]types.RawHighlight{
		{PageIndex: 1, Text: "10\nA. No."},
		{PageIndex: 0, Text: "5\nQ. Did you go?\n6\nA. Yes."},
	})
}

func TestIntakeFile(t *testing.T) {
	fixedClock(t)

	tests := []struct {
		name       string
		extractor  *fakeExtractor
		preCreate  bool
		overwrite  bool
		wantStatus Status
		wantLog    string
		wantCalls  int
	}{
		{
			name:       "extracted",
			extractor:  &fakeExtractor{results: map[string]types.Extraction{"smith.pdf": smithExtraction()}},
			wantStatus: StatusExtracted,
			wantLog:    "extracted: smith.txt (2 highlights)",
			wantCalls:  1,
		},
		{
			name:       "existing output skipped",
			extractor:  &fakeExtractor{},
			preCreate:  true,
			wantStatus: StatusSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "existing output overwritten",
			extractor:  &fakeExtractor{results: map[string]types.Extraction{"smith.pdf": smithExtraction()}},
			preCreate:  true,
			overwrite:  true,
			wantStatus: StatusExtracted,
			wantLog:    "extracted:",
			wantCalls:  1,
		},
		{
			name:       "extraction failure",
			extractor:  &fakeExtractor{fail: map[string]error{"smith.pdf": errors.New("not a PDF")}},
			wantStatus: StatusFailed,
			wantLog:    "failed:    smith.txt (not a PDF)",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := filepath.Join(t.TempDir(), "out")
			outPath := OutputPath("smith.pdf", outDir)
			if tt.preCreate {
				require.NoError(t, os.MkdirAll(outDir, 0o755))
				require.NoError(t, os.WriteFile(outPath, []byte("old"), 0o644))
			}

			var buf bytes.Buffer
			cfg := types.IntakeConfig{OutDir: outDir, Overwrite: tt.overwrite}
			got := IntakeFile(tt.extractor, "smith.pdf", cfg, &buf)

			assert.Equal(t, tt.wantStatus, got)
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Equal(t, tt.wantCalls, tt.extractor.calls)
		})
	}
}

func TestIntakeFile_Content(t *testing.T) {
	fixedClock(t)
	outDir := t.TempDir()
	ext := smithExtraction()
	e := &fakeExtractor{results: map[string]types.Extraction{"depo/smith.pdf": ext}}

	status := IntakeFile(e, "depo/smith.pdf", types.IntakeConfig{OutDir: outDir}, &bytes.Buffer{})
	require.Equal(t, StatusExtracted, status)

	outPath := filepath.Join(outDir, "smith.txt")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.HasPrefix(content, "---\n"))

	header, _, ok := strings.Cut(strings.TrimPrefix(content, "---\n"), "\n---\n")
	require.True(t, ok)
	var fm frontMatter
	require.NoError(t, yaml.Unmarshal([]byte(header), &fm))
	assert.Equal(t, "depo/smith.pdf", fm.SourcePDF)
	assert.Equal(t, []string{"2:10-10", "1:5-6"}, fm.Citations)
	assert.Equal(t, "2024-03-01T12:00:00Z", fm.ExtractedAt)

	body, err := ReadBody(outPath)
	require.NoError(t, err)
	assert.Equal(t, ext.Text, body)
	assert.Equal(t, "1:5-6\n2:10-10", designation.Format(body))
}

func TestIntakeBatch(t *testing.T) {
	fixedClock(t)
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "jones.txt"), []byte("old"), 0o644))

	e := &fakeExtractor{
		results: map[string]types.Extraction{"smith.pdf": smithExtraction()},
		fail:    map[string]error{"broken.pdf": highlight.ErrExtraction},
	}

	var buf bytes.Buffer
	r := IntakeBatch(e, []string{"smith.pdf", "jones.pdf", "broken.pdf"}, types.IntakeConfig{OutDir: outDir}, &buf)

	assert.Equal(t, BatchResult{Extracted: 1, Skipped: 1, Failed: 1}, r)
	assert.Equal(t, 3, r.Total())
	assert.True(t, r.HasFailures())
	assert.Contains(t, buf.String(), "Batch summary: 1 extracted, 1 skipped, 1 failed (total: 3)")
}

func TestBatchResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := IntakeBatch(&fakeExtractor{}, nil, types.IntakeConfig{OutDir: t.TempDir()}, &buf)
	assert.Zero(t, r.Total())
	assert.False(t, r.HasFailures())
}

func TestReadBody_NoFrontMatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 Q. Hello?\n"), 0o644))

	body, err := ReadBody(path)
	require.NoError(t, err)
	assert.Equal(t, "1 Q. Hello?\n", body)

	_, err = ReadBody(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

type stubReader struct{ err error }

func (s stubReader) ReadHighlights(string) ([]types.RawHighlight, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []types.RawHighlight{{PageIndex: 2, Text: "7\nQ. Why?"}}, nil
}

func TestReaderExtractor(t *testing.T) {
	ext, err := ReaderExtractor{Reader: stubReader{}}.Extract("x.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"3:7-7"}, ext.Citations)

	_, err = ReaderExtractor{Reader: stubReader{err: errors.New("boom")}}.Extract("x.pdf")
	assert.ErrorIs(t, err, highlight.ErrExtraction)
}
