package boxed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

func TestTuple_ArityAndElements(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	tup, err := NewTupleFromSlice(arena, []term.Term{term.SmallInt(1), term.SmallInt(2), term.SmallInt(3)})
	require.NoError(t, err)

	require.Equal(t, 3, tup.Arity())
	require.Equal(t, term.KindTuple, tup.Header().Kind())

	v, err := tup.ElementAt(2)
	require.NoError(t, err)
	n, _ := v.SmallInteger()
	require.EqualValues(t, 2, n)
}

func TestTuple_ArityZeroIsDistinctFromNil(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	tup, err := NewTupleFromSlice(arena, nil)
	require.NoError(t, err)
	require.Equal(t, 0, tup.Arity())
	asTerm := term.FromBoxed(tup, false)
	require.False(t, asTerm.IsNil())
}

func TestTuple_ElementAtOutOfRange(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	tup, err := NewTupleFromSlice(arena, []term.Term{term.SmallInt(1)})
	require.NoError(t, err)

	_, err = tup.ElementAt(0)
	require.ErrorIs(t, err, term.ErrBadarg)
	_, err = tup.ElementAt(2)
	require.ErrorIs(t, err, term.ErrBadarg)
}

func TestTuple_DeleteElement(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	tup, err := NewTupleFromSlice(arena, []term.Term{term.SmallInt(1), term.SmallInt(2), term.SmallInt(3)})
	require.NoError(t, err)

	remaining, err := tup.DeleteElement(2)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	a, _ := remaining[0].SmallInteger()
	b, _ := remaining[1].SmallInteger()
	require.EqualValues(t, 1, a)
	require.EqualValues(t, 3, b)

	_, err = tup.DeleteElement(0)
	require.ErrorIs(t, err, term.ErrBadarg)
	_, err = tup.DeleteElement(4)
	require.ErrorIs(t, err, term.ErrBadarg)
}

func TestTuple_SizeWordsIncludesBoxedChildren(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	inner, err := NewTupleFromSlice(arena, []term.Term{term.SmallInt(1)})
	require.NoError(t, err)
	outer, err := NewTupleFromSlice(arena, []term.Term{term.FromBoxed(inner, false)})
	require.NoError(t, err)

	require.Greater(t, outer.SizeWords(), inner.SizeWords())
}

func TestTuple_CloneToHeapPreservesStructure(t *testing.T) {
	src := NewArena(heap.NewBumpHeap(NativeWidth))
	dest := NewArena(heap.NewBumpHeap(NativeWidth))

	original, err := NewTupleFromSlice(src, []term.Term{term.SmallInt(7), term.SmallInt(8)})
	require.NoError(t, err)

	clonedTerm, err := original.cloneTo(dest)
	require.NoError(t, err)
	clone, ok := clonedTerm.Boxed()
	require.True(t, ok)
	cloneTup, ok := clone.(*Tuple)
	require.True(t, ok)

	require.Equal(t, original.SizeWords(), cloneTup.SizeWords())
	require.Equal(t, 0, CompareTuple(original, cloneTup, func(x, y term.Term) int {
		xv, _ := x.SmallInteger()
		yv, _ := y.SmallInteger()
		return int(xv - yv)
	}))
}
