// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cofactor/matrix"
)

// maxLineBytes bounds a single text row.
const maxLineBytes = 1 << 20

// Parse reads the text format from r.
//
// Implementation:
//   - Stage 1: scan lines, skipping blanks and '#' comments.
//   - Stage 2: the first row fixes n; later rows must match it.
//   - Stage 3: require exactly n rows and build the Dense.
//
// Errors: ErrEmptyInput, ErrRaggedRow, ErrRowCount, ErrBadEntry, or the
// reader's own error.
func Parse(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows [][]int64
		n    int
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if rows == nil {
			n = len(fields)
		} else if len(fields) != n {
			return nil, fmt.Errorf("line %d: %w: %w (got %d entries, want %d)",
				line, ErrRaggedRow, matrix.ErrRagged, len(fields), n)
		}
		if len(rows) == n {
			return nil, fmt.Errorf("line %d: %w: %w (more than %d rows)",
				line, ErrRowCount, matrix.ErrNonSquare, n)
		}

		row := make([]int64, n)
		for j, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w: %q", line, j+1, ErrBadEntry, tok)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return build(rows, n, line)
}

// build checks the row count and copies rows into a Dense.
func build(rows [][]int64, n, lastLine int) (*matrix.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if len(rows) != n {
		return nil, fmt.Errorf("line %d: %w: %w (got %d rows, want %d)",
			lastLine, ErrRowCount, matrix.ErrNonSquare, len(rows), n)
	}

	return matrix.NewDenseFromRows(rows)
}
