// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules provides the literal prefix tables used by the transcript
// line pipeline and loads overrides from a YAML rules file.
package rules

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// Default returns the built-in tables.
func Default() types.RuleTables {
	return types.RuleTables{
		QATriggers:        []string{"Q.", "A."},
		ObjectionTriggers: []string{"MR", "MS", "MRS", "ATTY", "ATTORNEY"},
		NonPartyTriggers:  []string{"THE VIDEOGRAPHER"},
		Substitutions: []types.Substitution{
			{From: "THE WITNESS:", To: "A."},
		},
		PageBreakMarker: "--- Page",
		NamePrefixes:    []string{"BY", "QUESTIONS BY"},
		NameSeparator:   ":",
	}
}

// file mirrors RuleTables with pointer fields so that Load can tell a key
// that is absent from one set to an empty list.
type file struct {
	QATriggers        *[]string             `yaml:"qa_triggers"`
	ObjectionTriggers *[]string             `yaml:"objection_triggers"`
	NonPartyTriggers  *[]string             `yaml:"non_party_triggers"`
	Substitutions     *[]types.Substitution `yaml:"substitutions"`
	PageBreakMarker   *string               `yaml:"page_break_marker"`
	NamePrefixes      *[]string             `yaml:"name_prefixes"`
	NameSeparator     *string               `yaml:"name_separator"`
}

// Load reads a YAML rules file and applies its keys over Default. An empty
// path returns the defaults.
func Load(path string) (types.RuleTables, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.RuleTables{}, fmt.Errorf("reading rules file: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML rule overrides over Default.
func Parse(data []byte) (types.RuleTables, error) {
	t := Default()

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return types.RuleTables{}, fmt.Errorf("parsing rules file: %w", err)
	}

	if f.QATriggers != nil {
		t.QATriggers = *f.QATriggers
	}
	if f.ObjectionTriggers != nil {
		t.ObjectionTriggers = *f.ObjectionTriggers
	}
	if f.NonPartyTriggers != nil {
		t.NonPartyTriggers = *f.NonPartyTriggers
	}
	if f.Substitutions != nil {
		t.Substitutions = *f.Substitutions
	}
	if f.PageBreakMarker != nil {
		t.PageBreakMarker = *f.PageBreakMarker
	}
	if f.NamePrefixes != nil {
		t.NamePrefixes = *f.NamePrefixes
	}
	if f.NameSeparator != nil {
		t.NameSeparator = *f.NameSeparator
	}

	if err := Validate(t); err != nil {
		return types.RuleTables{}, err
	}
	return t, nil
}

// Validate rejects tables the assembler cannot work with.
func Validate(t types.RuleTables) error {
	if len(t.QATriggers) == 0 {
		return fmt.Errorf("rules: qa_triggers must not be empty")
	}
	for _, list := range [][]string{t.QATriggers, t.ObjectionTriggers, t.NonPartyTriggers, t.NamePrefixes} {
		for _, p := range list {
			if p == "" {
				return fmt.Errorf("rules: trigger prefixes must not be empty strings")
			}
		}
	}
	for i, s := range t.Substitutions {
		if s.From == "" {
			return fmt.Errorf("rules: substitution %d has an empty from", i)
		}
	}
	return nil
}
