// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-cleaner/pkg/types"
)

// Result file formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Marshal renders out in format. The text format is the presentation
// script, a blank line, then the designation list.
func Marshal(out types.Output, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		var b strings.Builder
		b.WriteString(out.Presentation)
		b.WriteString("\n")
		if out.Designations != "" {
			b.WriteString("\n")
			b.WriteString(out.Designations)
			b.WriteString("\n")
		}
		return []byte(b.String()), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

// WriteResult writes out to path in format.
func WriteResult(path, format string, out types.Output) error {
	data, err := Marshal(out, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
