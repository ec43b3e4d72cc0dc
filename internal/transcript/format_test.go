// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-cleaner/internal/rules"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

func TestFormat(t *testing.T) {
	withLabel := types.DefaultFormatConfig()
	withLabel.ShowLabel = true
	withLabel.LabelText = "Smith Dep."

	showAll := types.DefaultFormatConfig()
	showAll.HideNames = false
	showAll.HideObjections = false

	tests := []struct {
		name  string
		input string
		cfg   types.FormatConfig
		want  string
	}{
		{
			name:  "objection filtered, Q and A tab-indented",
			input: "1 Q. Are you ready?\n2 A. Yes.\n3 MR. SMITH: Objection.\n",
			cfg:   types.DefaultFormatConfig(),
			want:  "Q.\tAre you ready?\nA.\tYes.",
		},
		{
			name:  "objection shown upper-cased",
			input: "1 Q. Are you ready?\n2 A. Yes.\n3 MR. SMITH: Objection.\n",
			cfg:   showAll,
			want:  "Q.\tAre you ready?\nA.\tYes.\nMR. SMITH: OBJECTION.",
		},
		{
			name:  "footer with line range",
			input: "10 Q. Did you sign it?\n11 A. I did,\n12 but not right away.",
			cfg:   withLabel,
			want:  "Q.\tDid you sign it?\nA.\tI did, but not right away.\n\nSmith Dep. Tr. Pg. __, Ln. 10-12",
		},
		{
			name:  "no line numbers means no footer",
			input: "Q. Hello?\nA. Hi.",
			cfg:   withLabel,
			want:  "Q.\tHello?\nA.\tHi.",
		},
		{
			name:  "witness lines become answers",
			input: "7 Q. Do you recall?\n8 THE WITNESS: I don't.",
			cfg:   types.DefaultFormatConfig(),
			want:  "Q.\tDo you recall?\nA.\tI don't.",
		},
		{
			name:  "attribution line dropped",
			input: "4 BY MR. JONES:\n5 Q. Where were you?",
			cfg:   types.DefaultFormatConfig(),
			want:  "Q.\tWhere were you?",
		},
		{
			name:  "attribution line kept when names shown",
			input: "4 BY MR. JONES:\n5 Q. Where were you?",
			cfg:   showAll,
			want:  "BY MR. JONES:\nQ.\tWhere were you?",
		},
		{
			name:  "page break marker separated",
			input: "--- Page 3:4-5: \n4 Q. Hi.\n5 A. Hello. ---",
			cfg:   types.DefaultFormatConfig(),
			want:  "--- Page 3:4-5:\n\nQ.\tHi.\nA.\tHello. ---",
		},
		{
			name:  "objection with sharp s hidden",
			input: "1 Q. Where did you live?\n2 A. On the Hauptstraße.\n3 MR. SMITH: Objection to Straße.\n",
			cfg:   types.DefaultFormatConfig(),
			want:  "Q.\tWhere did you live?\nA.\tOn the Hauptstraße.",
		},
		{
			name:  "objection with ligature hidden",
			input: "1 Q. Ready?\n2 MS. LEE: Objection, \ufb01nal.\n",
			cfg:   types.DefaultFormatConfig(),
			want:  "Q.\tReady?",
		},
		{
			name:  "objection shown with full case mapping",
			input: "1 Q. Where did you live?\n2 MR. SMITH: Objection to Straße, \ufb01nal.\n",
			cfg:   showAll,
			want:  "Q.\tWhere did you live?\nMR. SMITH: OBJECTION TO STRASSE, FINAL.",
		},
		{
			name:  "empty input",
			input: "",
			cfg:   withLabel,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input, tt.cfg, rules.Default())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcess_LineTracking(t *testing.T) {
	cfg := types.DefaultFormatConfig()

	r := Process("4 BY MR. JONES:\n5 Q. Where were you?\n6 A. Out.", cfg, rules.Default())
	require.NotNil(t, r.FirstLine)
	require.NotNil(t, r.LastLine)
	assert.Equal(t, 4, *r.FirstLine, "dropped attribution line still counts")
	assert.Equal(t, 6, *r.LastLine)

	r = Process("Q. Where were you?\nA. Out.", cfg, rules.Default())
	assert.Nil(t, r.FirstLine)
	assert.Nil(t, r.LastLine)
}

func TestFormat_Deterministic(t *testing.T) {
	input := "1 Q. Are you ready?\n2 A. Yes.\n3 MR. SMITH: Objection.\n4 THE VIDEOGRAPHER: Off the record.\n5 Q. Back on."
	cfg := types.DefaultFormatConfig()
	cfg.ShowLabel = true

	first := Format(input, cfg, rules.Default())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Format(input, cfg, rules.Default()))
	}
}

func TestFormatGroups(t *testing.T) {
	groups := []types.PhraseGroup{
		{Text: "\nQ.\tOne?"},
		{Text: "\nMR. X: OBJECTION.", Capitalized: true},
		{Text: "\nA.\tTwo."},
	}
	one, nine := 1, 9

	hidden := types.FormatConfig{HideObjections: true}
	assert.Equal(t, "Q.\tOne?\nA.\tTwo.", FormatGroups(groups, nil, nil, hidden))

	lowerObjection := []types.PhraseGroup{
		{Text: "\nQ.\tOne?"},
		{Text: "\nMS. LEE: objection, ﬁnal.", Capitalized: true},
	}
	assert.Equal(t, "Q.\tOne?", FormatGroups(lowerObjection, nil, nil, hidden),
		"capitalized groups are hidden whatever their case")

	labelled := types.FormatConfig{ShowLabel: true, LabelText: "Doe Dep."}
	assert.Equal(t, "Q.\tOne?\nMR. X: OBJECTION.\nA.\tTwo.\n\nDoe Dep. Tr. Pg. __, Ln. 1-9",
		FormatGroups(groups, &one, &nine, labelled))
}

func TestIsUpper(t *testing.T) {
	assert.True(t, isUpper("\nMR. SMITH: OBJECTION."))
	assert.False(t, isUpper("\nQ.\tAre you ready?"))
	assert.False(t, isUpper("12 -- 34"))
	assert.False(t, isUpper(""))
}
