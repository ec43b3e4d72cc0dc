// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-runs the transcript pipelines whenever a text file
// changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/transcript-cleaner/internal/pipeline"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// DefaultSettle is how long the watcher waits after the last change
// before reprocessing. Editors often save in several writes.
const DefaultSettle = 200 * time.Millisecond

// Outputs names the files written for one transcript.
type Outputs struct {
	Presentation string
	Designations string
}

// OutputPaths returns where the outputs for path go in outDir. An empty
// outDir means the directory of path.
func OutputPaths(path, outDir string) Outputs {
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Outputs{
		Presentation: filepath.Join(outDir, base+".powerpoint.txt"),
		Designations: filepath.Join(outDir, base+".designations.txt"),
	}
}

// ProcessFile runs both pipelines over the file at path and writes their
// outputs.
func ProcessFile(path, outDir string, cfg types.FormatConfig, t types.RuleTables) (Outputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outputs{}, fmt.Errorf("reading transcript: %w", err)
	}
	out := pipeline.Run(string(data), cfg, t)

	paths := OutputPaths(path, outDir)
	if err := os.MkdirAll(filepath.Dir(paths.Presentation), 0o755); err != nil {
		return Outputs{}, fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(paths.Presentation, []byte(out.Presentation+"\n"), 0o644); err != nil {
		return Outputs{}, fmt.Errorf("writing presentation: %w", err)
	}
	if err := os.WriteFile(paths.Designations, []byte(out.Designations+"\n"), 0o644); err != nil {
		return Outputs{}, fmt.Errorf("writing designations: %w", err)
	}
	return paths, nil
}

// Watcher reprocesses one transcript file on every change. Events are
// handled one at a time on the goroutine that calls Start.
type Watcher struct {
	target string
	outDir string
	cfg    types.FormatConfig
	rules  types.RuleTables
	log    *slog.Logger

	// Settle is the quiet period after the last change before the file is
	// reprocessed.
	Settle time.Duration

	fsw *fsnotify.Watcher
}

// New watches the directory holding wc.Path. Watching the directory rather
// than the file keeps the watch alive across editors that save by rename.
func New(wc types.WatchConfig, cfg types.FormatConfig, t types.RuleTables, log *slog.Logger) (*Watcher, error) {
	if wc.Path == "" {
		return nil, errors.New("watch: no file given")
	}
	target, err := filepath.Abs(wc.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", wc.Path, err)
	}
	if log == nil {
		log = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &Watcher{
		target: target,
		outDir: wc.OutDir,
		cfg:    cfg,
		rules:  t,
		log:    log,
		Settle: DefaultSettle,
		fsw:    fsw,
	}, nil
}

// Start processes the file once if it exists, then again after each change,
// until ctx is cancelled. It returns ctx.Err() on cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.log.Info("watching transcript", "file", w.target)
	if _, err := os.Stat(w.target); err == nil {
		w.process()
	}

	settle := time.NewTimer(time.Hour)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("transcript changed", "op", event.Op.String())
			settle.Reset(w.Settle)

		case <-settle.C:
			w.process()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.target
}

func (w *Watcher) process() {
	out, err := ProcessFile(w.target, w.outDir, w.cfg, w.rules)
	if err != nil {
		w.log.Error("processing transcript", "file", w.target, "error", err)
		return
	}
	w.log.Info("transcript processed",
		"presentation", out.Presentation,
		"designations", out.Designations)
}
