// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	buildNumber = 7710
	copyright   = "Copyright 2024, Core Legal Concepts, LLC."
)

var knownIssues = []string{
	"Segments spanning multiple pages are not supported for designation lists.",
	"Items imported from PDF appear in highlight order, not sequentially.",
	"The auto-generated cite does not account for multiple segments.",
	"Include the first line number in a selection to get an accurate cite.",
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show build information and known issues",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "transcript-cleaner %s (build %d)\n", version, buildNumber)
		fmt.Fprintln(out, copyright)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Known issues:")
		for _, issue := range knownIssues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
