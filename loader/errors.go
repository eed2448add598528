// SPDX-License-Identifier: MIT

package loader

import "errors"

var (
	// ErrEmptyInput is returned when the input holds no matrix rows at all.
	ErrEmptyInput = errors.New("loader: empty input")

	// ErrRaggedRow is returned when a row's entry count differs from the first row's.
	ErrRaggedRow = errors.New("loader: ragged row")

	// ErrRowCount is returned when the number of rows differs from the order n.
	ErrRowCount = errors.New("loader: row count does not match order")

	// ErrBadEntry is returned when an entry is not a base-10 int64.
	ErrBadEntry = errors.New("loader: bad entry")

	// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
	ErrUnknownFormat = errors.New("loader: unknown format")
)
