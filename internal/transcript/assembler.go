// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// triggerKind classifies a line that opens a new phrase.
type triggerKind int

const (
	triggerQA triggerKind = iota
	triggerSpeaker // objection or non-party speech
)

// Assembler groups consecutive filtered lines into phrase groups. Feed it
// lines with Add and collect the closed groups with Close.
type Assembler struct {
	cfg   types.FormatConfig
	rules types.RuleTables

	phrase     string
	capitalize bool
	completed  []types.PhraseGroup
}

// NewAssembler returns an Assembler with an empty phrase.
func NewAssembler(cfg types.FormatConfig, rules types.RuleTables) *Assembler {
	return &Assembler{cfg: cfg, rules: rules}
}

// Add classifies line and either opens a new phrase or extends the open one.
func (a *Assembler) Add(line string) {
	if trigger, ok := matchPrefix(line, a.rules.QATriggers); ok {
		a.flush(triggerQA)
		a.phrase = "\n" + trigger + "\t" + strings.TrimLeftFunc(line[len(trigger):], unicode.IsSpace)
		a.capitalize = false
		return
	}
	if a.isSpeaker(line) {
		a.flush(triggerSpeaker)
		a.phrase = "\n" + line
		a.capitalize = true
		return
	}

	if line == "" || a.suppressed() {
		return
	}
	if a.phrase != "" {
		a.phrase += " "
	}
	a.phrase += line
}

// Close flushes the open phrase, if any, and returns every closed group in
// order. The final phrase is emitted even when it is a hidden objection;
// FormatGroups filters it out.
func (a *Assembler) Close() []types.PhraseGroup {
	if a.phrase != "" {
		a.emit()
	}
	return a.completed
}

// open reports the phrase being assembled and whether it is capitalized.
func (a *Assembler) open() (string, bool) {
	return a.phrase, a.capitalize
}

func (a *Assembler) isSpeaker(line string) bool {
	if _, ok := matchPrefix(line, a.rules.ObjectionTriggers); ok {
		return true
	}
	_, ok := matchPrefix(line, a.rules.NonPartyTriggers)
	return ok
}

// suppressed reports whether the open phrase is speech that must not be
// extended or flushed.
func (a *Assembler) suppressed() bool {
	if a.cfg.FlushPolicy == types.FlushQAOnly {
		return a.capitalize
	}
	return a.capitalize && a.cfg.HideObjections
}

// flush closes the open phrase before a trigger of the given kind replaces
// it. A suppressed phrase is discarded.
func (a *Assembler) flush(kind triggerKind) {
	if a.phrase == "" {
		return
	}
	if a.cfg.FlushPolicy == types.FlushQAOnly && kind != triggerQA {
		return
	}
	if a.suppressed() {
		return
	}
	a.emit()
}

func (a *Assembler) emit() {
	g := types.PhraseGroup{Text: a.phrase, Capitalized: a.capitalize}
	if a.capitalize {
		// Full case mapping: "ß" becomes "SS" and "ﬁ" becomes "FI".
		g.Text = cases.Upper(language.Und).String(g.Text)
	}
	a.completed = append(a.completed, g)
}
