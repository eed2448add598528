// Package cofactor computes exact determinants of square integer matrices
// by recursive cofactor (Laplace) expansion.
//
// 🚀 What is cofactor?
//
//	A small library and CLI that brings together:
//		• Matrix model: immutable int64 Dense, minors, identity & builders
//		• Base case: the rule of Sarrus for 3×3
//		• Sequential engine: depth-first expansion along the bottom row
//		• Parallel engine: one task per cofactor, bounded pool + depth cutoff
//		• Loader: whitespace text and YAML matrix files
//
// ✨ Why choose cofactor?
//
//   - Exact – every product and sum is overflow-checked; no silent wrap
//   - Deterministic – both engines agree bit for bit, errors included
//   - Safe fan-out – a parent never waits on a slot its children need
//
// Under the hood, everything is organized under these packages:
//
//	matrix/       — Dense, Minor, MinorArena, validators
//	determinant/  — Sarrus, Sequential, Parallel, options & stats
//	loader/       — Parse (text), ParseYAML, Load
//	internal/cli/ — the `cofactor det` command
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
//	det, _ := determinant.Parallel(m) // -3
//
//	go install github.com/katalvlaran/cofactor/cmd/cofactor@latest
package cofactor
