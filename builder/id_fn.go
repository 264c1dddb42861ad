// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// id_fn.go - node ID schemes used by every Constructor.
//
// Contract:
//   • An IDFn is pure and injective on its domain: distinct indices never
//     share an ID, or constructors would merge nodes.
//   • Bounded schemes (SymbolIDFn) advertise their capacity through the
//     With*IDs option; constructors check it up front and return
//     ErrIDSpaceExhausted instead of letting the IDFn panic.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based node index to its string ID.
type IDFn func(idx int) string

// SymbolIDCapacity is the number of IDs SymbolIDFn can produce ("A".."Z").
const SymbolIDCapacity = 26

// unboundedIDs marks a scheme with no upper index limit.
const unboundedIDs = 0

// DefaultIDFn: 0→"0", 42→"42". Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn: 0→"A" … 25→"Z". Panics outside [0, SymbolIDCapacity).
func SymbolIDFn(idx int) string {
	mustIndex("SymbolIDFn", idx)
	if idx >= SymbolIDCapacity {
		panic(fmt.Sprintf("SymbolIDFn: idx %d exceeds capacity %d", idx, SymbolIDCapacity))
	}

	return string(rune('A' + idx))
}

// AlphanumericIDFn: base-36, 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	mustIndex("AlphanumericIDFn", idx)
	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn: 10→"a", 255→"ff". Panics if idx < 0.
func HexIDFn(idx int) string {
	mustIndex("HexIDFn", idx)
	return strconv.FormatInt(int64(idx), 16)
}

// ExcelColumnIDFn: bijective base-26, 0→"A", 25→"Z", 26→"AA", 701→"ZZ".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	mustIndex("ExcelColumnIDFn", idx)

	var buf [16]byte // 26^16 exceeds any int index
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}

	return string(buf[pos:])
}

// SymbolNumberIDFn returns an IDFn producing prefix+idx: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustIndex("SymbolNumberIDFn", idx)
		return prefix + strconv.Itoa(idx)
	}
}

// mustIndex panics on a negative index; constructors never pass one.
func mustIndex(scheme string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", scheme, idx))
	}
}

// withBoundedIDs installs fn together with the number of indices it accepts.
func withBoundedIDs(fn IDFn, capacity int) BuilderOption {
	return func(c *builderConfig) {
		c.idFn, c.idCap = fn, capacity
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the ID scheme to SymbolIDFn, limited to SymbolIDCapacity nodes.
func WithSymbolIDs() BuilderOption { return withBoundedIDs(SymbolIDFn, SymbolIDCapacity) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs sets the ID scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }
