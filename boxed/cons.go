package boxed

import (
	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// Cons is a boxed list cell: a head Term and a tail Term, the tail
// ordinarily either another Cons or the nil immediate (spec section 3).
type Cons struct {
	head term.Term
	tail term.Term
	size int // container's own layout size in bytes; a cons cell's shape never varies
}

// NewCons allocates a Cons cell, cloning head and tail onto a.
func NewCons(a heap.TermAlloc, head, tail term.Term) (*Cons, error) {
	l, err := layout.ConsLayout(NativeWidth)
	if err != nil {
		return nil, utils.WrapError("boxed: cons layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating cons", err)
	}
	clonedHead, err := cloneTerm(a, head)
	if err != nil {
		return nil, utils.WrapError("boxed: cloning cons head", err)
	}
	clonedTail, err := cloneTerm(a, tail)
	if err != nil {
		return nil, utils.WrapError("boxed: cloning cons tail", err)
	}
	return &Cons{head: clonedHead, tail: clonedTail, size: l.Size}, nil
}

// Head and Tail are the cell's immutable field accessors.
func (c *Cons) Head() term.Term { return c.head }
func (c *Cons) Tail() term.Term { return c.tail }

// Header implements term.Boxed.
func (c *Cons) Header() term.Header {
	return term.NewHeader(term.KindCons, layout.ArityWords(NativeWidth, c.size))
}

// SizeWords implements term.Boxed.
func (c *Cons) SizeWords() uint64 {
	total := uint64(c.size) / uint64(NativeWidth.WordSize())
	total += subTermWords(c.head)
	total += subTermWords(c.tail)
	return total
}

func (c *Cons) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewCons(dest, c.head, c.tail)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

// CompareCons orders two list cells structurally: head first, then tail
// (spec section 3's per-kind structural ordering).
func CompareCons(a, b *Cons, cmpTerm func(x, y term.Term) int) int {
	if d := cmpTerm(a.head, b.head); d != 0 {
		return d
	}
	return cmpTerm(a.tail, b.tail)
}

// ListFromSlice builds a proper list (nil-terminated cons chain) from
// elements, in order, on heap a. An empty slice yields term.Nil() with no
// allocation.
func ListFromSlice(a heap.TermAlloc, elements []term.Term) (term.Term, error) {
	result := term.Nil()
	for i := len(elements) - 1; i >= 0; i-- {
		cell, err := NewCons(a, elements[i], result)
		if err != nil {
			return term.Term{}, utils.WrapError("boxed: building list", err)
		}
		result = term.FromBoxed(cell, false)
	}
	return result, nil
}
