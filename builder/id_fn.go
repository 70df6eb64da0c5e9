// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// id_fn.go: vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs "0","1",….
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn returns "1","2",…, the scheme used for converted graphs.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolIDFn returns "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet-style IDs "A".."Z","AA",….
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithOneBasedIDs selects OneBasedIDFn.
func WithOneBasedIDs() BuilderOption { return WithIDScheme(OneBasedIDFn) }

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }
