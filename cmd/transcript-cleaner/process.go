// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-cleaner/internal/export"
	"github.com/pdiddy/transcript-cleaner/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Produce the PowerPoint script and designation list together",
	Long: `Process runs both transforms over the same input. The text format
prints the script, a blank line, and the designation list; yaml and json
also carry the phrase groups and the first and last transcript line
numbers. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().String("format", export.FormatText, "output format: text, yaml, or json")
	processCmd.Flags().String("out", "", "write the result to this file instead of stdout")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, t, err := settings()
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := pipeline.Run(text, cfg, t)
	format, _ := cmd.Flags().GetString("format")

	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		if err := export.WriteResult(outPath, format, out); err != nil {
			return err
		}
		slog.Info("wrote result", "path", outPath, "format", format)
		return nil
	}

	data, err := export.Marshal(out, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
