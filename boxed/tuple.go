package boxed

import (
	"fmt"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// Tuple is a boxed, fixed-arity ordered sequence of Terms (spec section
// 3). A Tuple of arity 0 is a distinct value from nil — it is a boxed
// object with a header, nil is an immediate.
type Tuple struct {
	elements []term.Term
	size     int // container's own layout size in bytes, fixed by arity at construction
}

// NewTupleFromSlice allocates a Tuple and clones each element onto a, so
// the tuple shares no mutable sub-term with its source.
func NewTupleFromSlice(a heap.TermAlloc, elements []term.Term) (*Tuple, error) {
	l, err := layout.TupleLayout(NativeWidth, uint64(len(elements)))
	if err != nil {
		return nil, utils.WrapError("boxed: tuple layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating tuple", err)
	}
	t := &Tuple{elements: make([]term.Term, len(elements)), size: l.Size}
	for i, e := range elements {
		cloned, err := cloneTerm(a, e)
		if err != nil {
			return nil, fmt.Errorf("boxed: cloning tuple element %d: %w", i, err)
		}
		t.elements[i] = cloned
	}
	return t, nil
}

// Arity returns the tuple's element count.
func (t *Tuple) Arity() int { return len(t.elements) }

// Elements returns the tuple's elements in order.
func (t *Tuple) Elements() []term.Term { return t.elements }

// ElementAt projects the 1-based element at index, returning
// term.ErrBadarg if index is outside 1..Arity() (spec section 8).
func (t *Tuple) ElementAt(index int) (term.Term, error) {
	if index < 1 || index > len(t.elements) {
		return term.Term{}, fmt.Errorf("tuple index %d out of range 1..%d: %w", index, len(t.elements), term.ErrBadarg)
	}
	return t.elements[index-1], nil
}

// DeleteElement returns a new element slice with the 1-based index
// removed, or term.ErrBadarg if index is out of range (spec section 8,
// scenario 3).
func (t *Tuple) DeleteElement(index int) ([]term.Term, error) {
	if index < 1 || index > len(t.elements) {
		return nil, fmt.Errorf("tuple index %d out of range 1..%d: %w", index, len(t.elements), term.ErrBadarg)
	}
	out := make([]term.Term, 0, len(t.elements)-1)
	out = append(out, t.elements[:index-1]...)
	out = append(out, t.elements[index:]...)
	return out, nil
}

// Header implements term.Boxed. size was fixed at construction from the
// same arity this tuple was built with.
func (t *Tuple) Header() term.Header {
	return term.NewHeader(term.KindTuple, layout.ArityWords(NativeWidth, t.size))
}

// SizeWords implements term.Boxed.
func (t *Tuple) SizeWords() uint64 {
	total := uint64(t.size) / uint64(NativeWidth.WordSize())
	for _, e := range t.elements {
		total += subTermWords(e)
	}
	return total
}

func (t *Tuple) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewTupleFromSlice(dest, t.elements)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

func CompareTuple(a, b *Tuple, cmpTerm func(x, y term.Term) int) int {
	if len(a.elements) != len(b.elements) {
		return len(a.elements) - len(b.elements)
	}
	for i := range a.elements {
		if d := cmpTerm(a.elements[i], b.elements[i]); d != 0 {
			return d
		}
	}
	return 0
}
