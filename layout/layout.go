// Package layout computes byte-exact layouts for the variable-length boxed
// objects used by the term core: size, alignment, and field offsets, at
// both 32-bit and 64-bit pointer widths.
//
// Calculation here is pure — no allocation, no heap access — so generated
// code and the runtime's own allocators can agree byte-for-byte on where
// every field of a boxed object lives without sharing any other state.
package layout

import (
	"fmt"

	"github.com/scigolib/beamterm/internal/utils"
)

// Width is a target pointer width, in bits. The Layout Calculator accepts
// either width regardless of the host the calculator itself runs on, so
// that cross-compilation and ahead-of-time code generation can query sizes
// for a target different from the host (spec section 4.1).
type Width uint8

const (
	Width32 Width = 32
	Width64 Width = 64
)

// WordSize returns the machine word size, in bytes, for this pointer width.
func (w Width) WordSize() int {
	if w == Width32 {
		return 4
	}
	return 8
}

// Valid reports whether w is one of the two supported pointer widths. Used
// by the ABI shim to reject any other value deterministically (spec
// section 6).
func (w Width) Valid() bool {
	return w == Width32 || w == Width64
}

// HeaderSize is the size, in bytes, of the single machine word prefixing
// every boxed object at this pointer width.
func (w Width) HeaderSize() int {
	return w.WordSize()
}

// Field describes one fixed-position field in a boxed object's layout.
type Field struct {
	Name  string
	Size  int // bytes
	Align int // bytes; must be a power of two
}

// Layout is the result of a layout calculation: the total size in bytes
// (already padded so that Size is a multiple of Alignment, enabling
// adjacent allocations), the layout's overall alignment, and the byte
// offset of every named field, including the synthetic "tail" offset where
// a variable-length sequence begins.
type Layout struct {
	Size      int
	Alignment int
	Offsets   map[string]int
}

// OffsetOf returns the byte offset of the named field, and whether it was
// found. Every Layout always defines "header" and "tail".
func (l *Layout) OffsetOf(name string) (int, bool) {
	off, ok := l.Offsets[name]
	return off, ok
}

func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Calculate lays out a boxed object as the sequential extension of its
// fixed fields, each aligned to its own natural alignment, followed by a
// variable-length tail of n elements of tailElemSize bytes aligned to
// tailAlign, with final padding so the total size is a multiple of the
// object's overall alignment (the target's word size). This is the single
// implementation of the "sequential-extend-with-natural-alignment" rule
// every boxed kind's layout is defined in terms of.
//
// The header field (one machine word, per spec section 3) is prepended
// automatically; callers supply only the fields after it.
func Calculate(width Width, fixed []Field, tailAlign, tailElemSize int, n uint64) (*Layout, error) {
	word := width.WordSize()

	offsets := make(map[string]int, len(fixed)+2)
	offset := 0

	offsets["header"] = offset
	offset += width.HeaderSize()

	for _, f := range fixed {
		offset = alignUp(offset, f.Align)
		offsets[f.Name] = offset
		offset += f.Size
	}

	if tailElemSize > 0 {
		offset = alignUp(offset, tailAlign)
	}
	offsets["tail"] = offset

	if n > 0 {
		if err := utils.ValidateElementCount(n, uint64(tailElemSize)); err != nil {
			return nil, fmt.Errorf("layout calculation: %w", err)
		}
		tailBytes, err := utils.SafeMultiply(n, uint64(tailElemSize))
		if err != nil {
			return nil, fmt.Errorf("layout calculation: %w", err)
		}
		offset += int(tailBytes)
	}

	alignment := word
	size := alignUp(offset, alignment)

	return &Layout{
		Size:      size,
		Alignment: alignment,
		Offsets:   offsets,
	}, nil
}

// BaseSize returns the layout size for an object of this shape with n = 0,
// i.e. no variable-length tail elements. Every boxed-object layout function
// built on Calculate exposes this as its base_size(width) (spec section
// 4.1).
func BaseSize(width Width, fixed []Field, tailAlign, tailElemSize int) int {
	l, err := Calculate(width, fixed, tailAlign, tailElemSize, 0)
	if err != nil {
		// n=0 can never overflow; a non-nil error here is an invariant
		// violation in the fixed-field description itself.
		panic(fmt.Sprintf("layout: base size calculation failed: %v", err))
	}
	return l.Size
}

// ArityWords returns the header's arity-in-words for a layout of this total
// byte size at this pointer width: (total_byte_size - header_size) / word_size.
func ArityWords(width Width, totalSize int) uint64 {
	word := width.WordSize()
	return uint64(totalSize-width.HeaderSize()) / uint64(word)
}
