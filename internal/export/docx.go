// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes cleaned transcripts to files: a Word document for
// the presentation script, and YAML or JSON for the full result.
package export

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	textColor = "000000"
)

// WriteDocx writes presentation to a .docx file at path, one paragraph per
// line. A "Q."/"A." label split from its text by a tab is set in bold.
// Blank lines become empty paragraphs. An empty title is left out.
func WriteDocx(path, title, presentation string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	if title != "" {
		addRun(doc.AddParagraph(""), title, true, titleSize)
		doc.AddParagraph("")
	}

	for _, line := range strings.Split(presentation, "\n") {
		p := doc.AddParagraph("")
		if line == "" {
			continue
		}
		label, text, ok := strings.Cut(line, "\t")
		if !ok {
			addRun(p, line, false, fontSize)
			continue
		}
		addRun(p, label+"\t", true, fontSize)
		if text != "" {
			addRun(p, text, false, fontSize)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}
