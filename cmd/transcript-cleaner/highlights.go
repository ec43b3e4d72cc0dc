// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-cleaner/internal/designation"
	"github.com/pdiddy/transcript-cleaner/internal/highlight"
	"github.com/pdiddy/transcript-cleaner/internal/intake"
	"github.com/pdiddy/transcript-cleaner/internal/pdfsource"
	"github.com/pdiddy/transcript-cleaner/internal/transcript"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

var highlightsCmd = &cobra.Command{
	Use:   "highlights <pdf>...",
	Short: "Extract highlighted transcript lines from PDFs",
	Long: `Highlights reads the highlight annotations of one or more PDF
transcripts. Each highlight becomes a "--- Page p:first-last:" block holding
its lines, rejoined with their line numbers. Highlights appear in the order
they were made, not in transcript order.

By default the blocks are printed. --citations prints only the page:line
ranges; --powerpoint and --designations feed the blocks straight into those
transforms. --out-dir writes one text file per PDF instead, skipping PDFs
already extracted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHighlights,
}

func init() {
	highlightsCmd.Flags().Bool("citations", false, "print only the citation for each highlight")
	highlightsCmd.Flags().Bool("powerpoint", false, "format the highlighted text as a PowerPoint script")
	highlightsCmd.Flags().Bool("designations", false, "print the sorted designation list for the highlights")
	highlightsCmd.Flags().String("out-dir", "", "write one <name>.txt per PDF into this directory")
	highlightsCmd.Flags().Bool("overwrite", false, "with --out-dir, re-extract PDFs whose output exists")
	highlightsCmd.Flags().Bool("no-validate", false, "skip the structural validation pass before reading")

	rootCmd.AddCommand(highlightsCmd)
}

func runHighlights(cmd *cobra.Command, args []string) error {
	reader := pdfsource.New()
	reader.SkipValidation, _ = cmd.Flags().GetBool("no-validate")
	out := cmd.OutOrStdout()

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir != "" {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		cfg := types.IntakeConfig{OutDir: outDir, Overwrite: overwrite}
		result := intake.IntakeBatch(intake.ReaderExtractor{Reader: reader}, args, cfg, out)
		if result.HasFailures() {
			return fmt.Errorf("%d PDF(s) failed extraction", result.Failed)
		}
		return nil
	}

	var (
		text      strings.Builder
		citations []string
	)
	for _, path := range args {
		ext, err := highlight.ExtractFile(reader, path)
		if err != nil {
			return err
		}
		text.WriteString(ext.Text)
		citations = append(citations, ext.Citations...)
	}

	citationsOnly, _ := cmd.Flags().GetBool("citations")
	asPowerpoint, _ := cmd.Flags().GetBool("powerpoint")
	asDesignations, _ := cmd.Flags().GetBool("designations")

	switch {
	case citationsOnly:
		for _, c := range citations {
			fmt.Fprintln(out, c)
		}
	case asPowerpoint || asDesignations:
		if asPowerpoint {
			cfg, t, err := settings()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, transcript.Format(text.String(), cfg, t))
		}
		if asDesignations {
			if asPowerpoint {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, designation.Format(text.String()))
		}
	default:
		fmt.Fprint(out, text.String())
	}
	return nil
}
