// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the input syntax.
type Format string

const (
	// FormatAuto picks FormatYAML for .yaml/.yml paths and FormatText otherwise.
	FormatAuto Format = "auto"
	// FormatText is whitespace separated rows.
	FormatText Format = "text"
	// FormatYAML is a YAML sequence of sequences.
	FormatYAML Format = "yaml"
)

// Formats lists every accepted format name, FormatAuto first.
func Formats() []Format {
	return []Format{FormatAuto, FormatText, FormatYAML}
}

// ParseFormat maps a case-insensitive name to a Format. The empty string
// means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText, "txt":
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Detect resolves FormatAuto against a file path; other formats pass through.
func Detect(path string, f Format) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}
