package boxed

import (
	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// Float is a boxed IEEE-754 double. Not in spec section 3's boxed-object
// table, but is_float_1/binary_to_float_1/mixed numeric comparison (spec
// section 8) are unimplementable without a float term kind, so it is
// supplemented here — see layout.FloatLayout and DESIGN.md.
type Float struct {
	value float64
	size  int // container's own layout size in bytes; a float's shape never varies
}

// NewFloat allocates a Float.
func NewFloat(a heap.Heap, v float64) (*Float, error) {
	l, err := layout.FloatLayout(NativeWidth)
	if err != nil {
		return nil, utils.WrapError("boxed: float layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating float", err)
	}
	return &Float{value: v, size: l.Size}, nil
}

// Value returns the float's value.
func (f *Float) Value() float64 { return f.value }

// Header implements term.Boxed.
func (f *Float) Header() term.Header {
	return term.NewHeader(term.KindFloat, layout.ArityWords(NativeWidth, f.size))
}

// SizeWords implements term.Boxed.
func (f *Float) SizeWords() uint64 {
	return uint64(f.size) / uint64(NativeWidth.WordSize())
}

func (f *Float) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewFloat(dest, f.value)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

func CompareFloat(a, b *Float) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}
