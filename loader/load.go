// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/cofactor/matrix"
)

// Read parses r in the given format. FormatAuto is treated as FormatText,
// since a stream has no extension to go by.
func Read(r io.Reader, f Format) (*matrix.Dense, error) {
	switch f {
	case FormatYAML:
		return ParseYAML(r)
	case FormatText, FormatAuto, "":
		return Parse(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Load opens path and parses it. FormatAuto picks the parser from the file
// extension (see Detect). Errors are prefixed with the path.
func Load(path string, f Format) (*matrix.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	m, err := Read(file, Detect(path, f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
