// Package boxed implements the concrete variable-length heap object kinds
// (spec section 3, section 4.4, section 4.5): closure, tuple, cons cell,
// binary (heap-resident and sub-range), big integer, map, reference, and
// the float supplement (see layout.FloatLayout). Each kind is an ordinary
// Go struct implementing term.Boxed, per the representation choice
// recorded in DESIGN.md — not a raw byte buffer laid out by package
// layout, which remains the ABI-facing, pointer-width-parameterized size
// calculator these constructors consult.
package boxed

import "github.com/scigolib/beamterm/layout"

// NativeWidth is the pointer width in-process boxed values are sized at.
// A live *Closure (or any other boxed struct) exists only as a Go value on
// the Go runtime's own heap, so one fixed width describes every one of
// them: Width64, whatever the GOARCH. The explicit 32-bit and 64-bit entry points spec section
// 4.1 requires for cross-compilation remain reachable directly through
// package layout and the ABI shim (abi.go) — they compute sizes for a
// target that may differ from NativeWidth without ever instantiating a
// boxed value at that width. See DESIGN.md's Open Question note on host
// vs. target pointer width.
const NativeWidth = layout.Width64
