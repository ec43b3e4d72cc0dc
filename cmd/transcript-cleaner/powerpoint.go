// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-cleaner/internal/export"
	"github.com/pdiddy/transcript-cleaner/internal/transcript"
)

var powerpointCmd = &cobra.Command{
	Use:   "powerpoint [file]",
	Short: "Format transcript text as a PowerPoint script",
	Long: `Powerpoint reads numbered transcript lines and prints them as a
presentation script: line numbers removed, Q/A turns tab-indented and joined
across lines, objections hidden or capitalized, and an optional citation
footer. Reads stdin when no file is given.

With --docx the script is also saved as a Word document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPowerpoint,
}

func init() {
	powerpointCmd.Flags().String("docx", "", "also write the script to this .docx file")
	powerpointCmd.Flags().String("title", "", "title paragraph for the .docx file (default: input file name)")

	rootCmd.AddCommand(powerpointCmd)
}

func runPowerpoint(cmd *cobra.Command, args []string) error {
	cfg, t, err := settings()
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	script := transcript.Format(text, cfg, t)
	fmt.Fprintln(cmd.OutOrStdout(), script)

	docxPath, _ := cmd.Flags().GetString("docx")
	if docxPath == "" {
		return nil
	}
	title, _ := cmd.Flags().GetString("title")
	if title == "" && len(args) > 0 && args[0] != "-" {
		title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	if err := export.WriteDocx(docxPath, title, script); err != nil {
		return err
	}
	slog.Info("wrote document", "path", docxPath)
	return nil
}
