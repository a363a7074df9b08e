// Package heap defines the allocation-accounting capability a process-local
// heap exposes to the term layer: charging a computed Layout against the
// heap's budget, and — for heaps that also serve as a Clone-to-Heap
// destination — the right to recursively place a boxed object's sub-terms
// as part of a single clone walk (spec section 4.3).
//
// Boxed objects themselves are ordinary Go structs (package boxed), not
// byte buffers; a Heap here tracks the bytes charged against a budget, and
// its Addresses are offsets into that budget rather than into backing
// storage, which is pure bookkeeping rather than memory layout.
//
// A heap is owned by exactly one process (spec section 5): nothing here is
// safe for concurrent use, and the interfaces intentionally say nothing
// about locking — callers serialize access at the scheduler layer, outside
// this package's scope.
package heap

import (
	"errors"

	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// ErrOutOfMemory is returned by Reserve when a bounded heap cannot
// accommodate a requested layout. It is comparable with errors.Is.
var ErrOutOfMemory = errors.New("heap: out of memory")

// Address identifies one reservation against a Heap's budget. It carries
// no meaning outside the Heap that issued it.
type Address uint64

// Heap is the base accounting capability: given a computed Layout, charge
// its size against the heap's budget and hand back an Address identifying
// the reservation.
type Heap interface {
	// Reserve charges l's total size against the heap and returns an
	// Address identifying the reservation. Returns ErrOutOfMemory if the
	// heap is bounded and cannot grow to fit l.
	Reserve(l *layout.Layout) (Address, error)

	// Used returns the number of bytes reserved so far.
	Used() uint64

	// Width is the pointer width this heap's layouts were computed for.
	Width() layout.Width
}

// TermAlloc refines Heap with the capability needed to deep-copy a boxed
// term: recursively reserving space for, and constructing copies of, a
// term's own boxed children (spec section 4.3, section 4.6). Package
// boxed's Arena is the sole implementer — it wraps a Heap for accounting
// and adds concrete-kind dispatch, which heap cannot do without importing
// boxed and creating a cycle.
type TermAlloc interface {
	Heap

	// CloneSubTerm deep-copies src onto this allocator, recursing into any
	// boxed fields src itself owns, and returns the clone as a Term. A
	// literal-flagged source term should not reach CloneSubTerm at all —
	// callers check Term.IsLiteral and reuse the original term.Term
	// instead, since literals live in a read-only region shared across
	// clones (spec section 4.6).
	CloneSubTerm(src term.Boxed) (term.Term, error)
}
