// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-cleaner/internal/designation"
)

var designationsCmd = &cobra.Command{
	Use:   "designations [file]",
	Short: "List page:line designations in sorted order",
	Long: `Designations finds every page:start-end citation token (written with a
trailing colon, as in "12:4-9:") and prints them sorted by page and start
line, one per line, ready for import into OnCue. Reads stdin when no file is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		if out := designation.Format(text); out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(designationsCmd)
}
