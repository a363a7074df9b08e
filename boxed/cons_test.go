package boxed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

func TestCons_HeadTail(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	cell, err := NewCons(arena, term.SmallInt(1), term.Nil())
	require.NoError(t, err)

	v, ok := cell.Head().SmallInteger()
	require.True(t, ok)
	require.EqualValues(t, 1, v)
	require.True(t, cell.Tail().IsNil())
	require.Equal(t, term.KindCons, cell.Header().Kind())
}

func TestListFromSlice_EmptyYieldsNilWithNoAllocation(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	before := arena.Used()

	list, err := ListFromSlice(arena, nil)
	require.NoError(t, err)
	require.True(t, list.IsNil())
	require.Equal(t, before, arena.Used())
}

func TestListFromSlice_PreservesOrder(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	list, err := ListFromSlice(arena, []term.Term{term.SmallInt(1), term.SmallInt(2), term.SmallInt(3)})
	require.NoError(t, err)

	var got []int64
	cur := list
	for !cur.IsNil() {
		b, ok := cur.Boxed()
		require.True(t, ok)
		cell := b.(*Cons)
		v, _ := cell.Head().SmallInteger()
		got = append(got, v)
		cur = cell.Tail()
	}
	require.Equal(t, []int64{1, 2, 3}, got)
}

func TestCons_CloneToHeap(t *testing.T) {
	src := NewArena(heap.NewBumpHeap(NativeWidth))
	dest := NewArena(heap.NewBumpHeap(NativeWidth))

	cell, err := NewCons(src, term.SmallInt(4), term.Nil())
	require.NoError(t, err)

	clonedTerm, err := cell.cloneTo(dest)
	require.NoError(t, err)
	b, ok := clonedTerm.Boxed()
	require.True(t, ok)
	clone := b.(*Cons)
	require.Equal(t, 0, CompareCons(cell, clone, func(x, y term.Term) int {
		if x.IsNil() && y.IsNil() {
			return 0
		}
		xv, _ := x.SmallInteger()
		yv, _ := y.SmallInteger()
		return int(xv - yv)
	}))
}
