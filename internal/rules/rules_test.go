// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, []string{"Q.", "A."}, d.QATriggers)
	assert.Equal(t, []string{"MR", "MS", "MRS", "ATTY", "ATTORNEY"}, d.ObjectionTriggers)
	assert.Equal(t, []string{"THE VIDEOGRAPHER"}, d.NonPartyTriggers)
	assert.Equal(t, []types.Substitution{{From: "THE WITNESS:", To: "A."}}, d.Substitutions)
	assert.Equal(t, "--- Page", d.PageBreakMarker)
	assert.Equal(t, []string{"BY", "QUESTIONS BY"}, d.NamePrefixes)
	assert.Equal(t, ":", d.NameSeparator)
	assert.NoError(t, Validate(d))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		check  func(t *testing.T, got types.RuleTables)
		errMsg string
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, got types.RuleTables) {
				assert.Equal(t, Default(), got)
			},
		},
		{
			name: "overrides only the keys present",
			yaml: "non_party_triggers: [\"THE VIDEOGRAPHER\", \"THE REPORTER\"]\n",
			check: func(t *testing.T, got types.RuleTables) {
				assert.Equal(t, []string{"THE VIDEOGRAPHER", "THE REPORTER"}, got.NonPartyTriggers)
				assert.Equal(t, Default().QATriggers, got.QATriggers)
				assert.Equal(t, Default().Substitutions, got.Substitutions)
			},
		},
		{
			name: "explicit empty list clears a table",
			yaml: "objection_triggers: []\n",
			check: func(t *testing.T, got types.RuleTables) {
				assert.Empty(t, got.ObjectionTriggers)
			},
		},
		{
			name: "ordered substitutions",
			yaml: "substitutions:\n  - from: \"THE WITNESS:\"\n    to: \"A.\"\n  - from: \"BY COUNSEL:\"\n    to: \"Q.\"\n",
			check: func(t *testing.T, got types.RuleTables) {
				require.Len(t, got.Substitutions, 2)
				assert.Equal(t, "BY COUNSEL:", got.Substitutions[1].From)
			},
		},
		{
			name:   "empty qa triggers rejected",
			yaml:   "qa_triggers: []\n",
			errMsg: "qa_triggers must not be empty",
		},
		{
			name:   "empty substitution source rejected",
			yaml:   "substitutions:\n  - from: \"\"\n    to: \"A.\"\n",
			errMsg: "empty from",
		},
		{
			name:   "invalid yaml",
			yaml:   ":::bad\n",
			errMsg: "parsing rules file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		got, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), got)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("page_break_marker: \"=== Page\"\n"), 0o644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "=== Page", got.PageBreakMarker)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading rules file")
	})
}
