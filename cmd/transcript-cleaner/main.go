// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-cleaner CLI. Each
// command reads transcript text (a file, stdin, or highlighted PDFs) and
// writes the cleaned PowerPoint script, the sorted designation list, or both.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transcript-cleaner/internal/logging"
	"github.com/pdiddy/transcript-cleaner/internal/rules"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the transcript-cleaner CLI.
var rootCmd = &cobra.Command{
	Use:   "transcript-cleaner",
	Short: "Clean deposition transcripts for presentations and designation lists",
	Long: `transcript-cleaner reformats deposition transcript excerpts. It turns
numbered transcript lines into a PowerPoint-ready script with Q/A turns
grouped and objections hidden or capitalized, and pulls page:line citations
into a sorted designation list for OnCue.

Input comes from a text file, stdin, or the highlights of a PDF transcript.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(types.LoggingConfig{Level: viper.GetString("log_level")}, os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultFormatConfig()
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./transcript-cleaner.yaml or ~/.config/transcript-cleaner/transcript-cleaner.yaml)")
	pf.Bool("hide-names", defaults.HideNames, `drop "BY ..." and "QUESTIONS BY ..." attribution lines`)
	pf.Bool("hide-objections", defaults.HideObjections, "leave objections and other non-party speech out of the script")
	pf.Bool("show-label", defaults.ShowLabel, "append a citation footer to the script")
	pf.String("label", defaults.LabelText, "citation footer label")
	pf.String("flush-policy", string(defaults.FlushPolicy), "phrase flush policy: uniform or qa-only")
	pf.String("rules", "", "YAML file overriding the trigger and substitution tables")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"hide_names":      "hide-names",
		"hide_objections": "hide-objections",
		"show_label":      "show-label",
		"label":           "label",
		"flush_policy":    "flush-policy",
		"rules_file":      "rules",
		"log_level":       "log-level",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-cleaner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-cleaner"))
		}
	}

	viper.SetEnvPrefix("TRANSCRIPT_CLEANER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// formatConfig assembles the formatting options from flags, environment,
// and config file.
func formatConfig() (types.FormatConfig, error) {
	cfg := types.FormatConfig{
		HideNames:      viper.GetBool("hide_names"),
		HideObjections: viper.GetBool("hide_objections"),
		ShowLabel:      viper.GetBool("show_label"),
		LabelText:      viper.GetString("label"),
		FlushPolicy:    types.FlushPolicy(viper.GetString("flush_policy")),
	}
	if err := cfg.Validate(); err != nil {
		return types.FormatConfig{}, err
	}
	return cfg, nil
}

// ruleTables loads the rule tables named by rules_file, or the defaults.
func ruleTables() (types.RuleTables, error) {
	return rules.Load(viper.GetString("rules_file"))
}

// settings returns both the formatting options and the rule tables.
func settings() (types.FormatConfig, types.RuleTables, error) {
	cfg, err := formatConfig()
	if err != nil {
		return types.FormatConfig{}, types.RuleTables{}, err
	}
	t, err := ruleTables()
	if err != nil {
		return types.FormatConfig{}, types.RuleTables{}, err
	}
	return cfg, t, nil
}

// readInput returns the text of the file named by args[0], or of stdin when
// no file is given or the name is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
