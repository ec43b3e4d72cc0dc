// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the presentation and designation transforms over
// one block of transcript text.
package pipeline

import (
	"github.com/pdiddy/transcript-cleaner/internal/designation"
	"github.com/pdiddy/transcript-cleaner/internal/transcript"
	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// Run returns both outputs for text. The two transforms share nothing but
// the input, so the designation list is unaffected by cfg.
func Run(text string, cfg types.FormatConfig, t types.RuleTables) types.Output {
	r := transcript.Process(text, cfg, t)
	return types.Output{
		Presentation: transcript.FormatGroups(r.Groups, r.FirstLine, r.LastLine, cfg),
		Designations: designation.Format(text),
		Groups:       r.Groups,
		FirstLine:    r.FirstLine,
		LastLine:     r.LastLine,
	}
}
