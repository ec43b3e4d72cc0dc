// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-cleaner/internal/watch"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reprocess a transcript file every time it is saved",
	Long: `Watch processes a transcript text file, then keeps watching it. Each
time the file is saved, <name>.powerpoint.txt and <name>.designations.txt
are rewritten. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("out-dir", "", "directory for the outputs (default: next to the file)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, t, err := settings()
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out-dir")

	w, err := watch.New(types.WatchConfig{Path: args[0], OutDir: outDir}, cfg, t, slog.Default())
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
