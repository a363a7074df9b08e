package boxed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

func TestFloat_Value(t *testing.T) {
	h := heap.NewBumpHeap(NativeWidth)
	f, err := NewFloat(h, 3.14)
	require.NoError(t, err)
	require.Equal(t, 3.14, f.Value())
	require.Equal(t, term.KindFloat, f.Header().Kind())
}

func TestFloat_Compare(t *testing.T) {
	h := heap.NewBumpHeap(NativeWidth)
	lo, err := NewFloat(h, 1.0)
	require.NoError(t, err)
	hi, err := NewFloat(h, 2.0)
	require.NoError(t, err)

	require.Equal(t, -1, CompareFloat(lo, hi))
	require.Equal(t, 1, CompareFloat(hi, lo))
	require.Equal(t, 0, CompareFloat(lo, lo))
}

func TestFloat_CloneToHeap(t *testing.T) {
	src := NewArena(heap.NewBumpHeap(NativeWidth))
	dest := NewArena(heap.NewBumpHeap(NativeWidth))

	f, err := NewFloat(src, 9.5)
	require.NoError(t, err)
	clonedTerm, err := f.cloneTo(dest)
	require.NoError(t, err)
	b, ok := clonedTerm.Boxed()
	require.True(t, ok)
	clone := b.(*Float)
	require.Equal(t, 9.5, clone.Value())
}
