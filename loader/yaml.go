// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/cofactor/matrix"
	"gopkg.in/yaml.v3"
)

// matrixKey is the mapping key that may wrap the row sequence.
const matrixKey = "matrix"

// ParseYAML reads the YAML format from r. Only the first document is used.
//
// Errors: ErrEmptyInput, ErrRaggedRow, ErrRowCount, ErrBadEntry, or a YAML
// syntax error.
func ParseYAML(r io.Reader) (*matrix.Dense, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("loader: yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyInput
	}

	seq, err := rowsNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if len(seq.Content) == 0 {
		return nil, fmt.Errorf("line %d: %w", seq.Line, ErrEmptyInput)
	}

	var (
		rows [][]int64
		n    int
	)
	for i, rowNode := range seq.Content {
		if rowNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: %w: row %d is not a sequence", rowNode.Line, ErrBadEntry, i+1)
		}
		if i == 0 {
			n = len(rowNode.Content)
			if n == 0 {
				return nil, fmt.Errorf("line %d: %w", rowNode.Line, ErrEmptyInput)
			}
		} else if len(rowNode.Content) != n {
			return nil, fmt.Errorf("line %d: %w: %w (got %d entries, want %d)",
				rowNode.Line, ErrRaggedRow, matrix.ErrRagged, len(rowNode.Content), n)
		}

		row := make([]int64, n)
		for j, cell := range rowNode.Content {
			if cell.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d, column %d: %w: not a scalar", cell.Line, j+1, ErrBadEntry)
			}
			if err := cell.Decode(&row[j]); err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w: %q", cell.Line, j+1, ErrBadEntry, cell.Value)
			}
		}
		rows = append(rows, row)
	}

	last := seq.Content[len(seq.Content)-1].Line
	return build(rows, n, last)
}

// rowsNode returns the sequence holding the rows, either the root itself or
// the value under matrixKey.
func rowsNode(root *yaml.Node) (*yaml.Node, error) {
	switch root.Kind {
	case yaml.SequenceNode:
		return root, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value != matrixKey {
				continue
			}
			v := root.Content[i+1]
			if v.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: %w: %q is not a sequence", v.Line, ErrBadEntry, matrixKey)
			}
			return v, nil
		}
		return nil, fmt.Errorf("line %d: %w: no %q key", root.Line, ErrEmptyInput, matrixKey)
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return nil, ErrEmptyInput
		}
	}

	return nil, fmt.Errorf("line %d: %w: expected a sequence of rows", root.Line, ErrBadEntry)
}
