package boxed

import (
	"fmt"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

// cloner is implemented by every concrete boxed kind in this package. It is
// the internal counterpart of heap.TermAlloc.CloneSubTerm: Arena type-
// switches a term.Boxed to this interface so the dispatch logic lives
// alongside the kinds it dispatches over, instead of in package heap (which
// cannot import boxed without creating a cycle).
type cloner interface {
	cloneTo(dest heap.TermAlloc) (term.Term, error)
}

// Arena adapts any heap.Heap into a heap.TermAlloc by adding concrete-kind
// Clone-to-Heap dispatch on top of the wrapped heap's accounting. This is
// the only TermAlloc implementation in the module — heap.BumpHeap itself
// only ever satisfies the narrower Heap interface.
type Arena struct {
	heap.Heap
}

// NewArena wraps h so it can serve as a Clone-to-Heap destination.
func NewArena(h heap.Heap) *Arena {
	return &Arena{Heap: h}
}

// CloneSubTerm implements heap.TermAlloc by dispatching to src's own
// cloneTo method. Every boxed kind defined in this package implements
// cloner; a src of any other type is reported as an error.
func (a *Arena) CloneSubTerm(src term.Boxed) (term.Term, error) {
	c, ok := src.(cloner)
	if !ok {
		return term.Term{}, fmt.Errorf("boxed: %T does not implement clone-to-heap", src)
	}
	return c.cloneTo(a)
}

// subTermWords is the Σ child.size_in_words term in the Clone-to-Heap size
// formula (spec section 4.6): zero for an immediate, zero for a literal
// (literals are shared, not counted against the owning term's own cost),
// and the child's own SizeWords otherwise.
func subTermWords(t term.Term) uint64 {
	if t.IsLiteral() {
		return 0
	}
	b, ok := t.Boxed()
	if !ok {
		return 0
	}
	return b.SizeWords()
}

// cloneTerm clones a single Term onto dest: literal-flagged boxed terms are
// reused as-is (spec section 4.6, section 5 — never clone read-only
// literals unnecessarily), immediates are copied by value, and any other
// boxed term is recursively cloned through dest's TermAlloc capability.
func cloneTerm(dest heap.TermAlloc, t term.Term) (term.Term, error) {
	if t.IsLiteral() {
		return t, nil
	}
	b, ok := t.Boxed()
	if !ok {
		return t, nil
	}
	return dest.CloneSubTerm(b)
}
