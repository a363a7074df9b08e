package beamterm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/heap"
)

func newArena() TermAlloc {
	return boxed.NewArena(heap.NewBumpHeap(boxed.NativeWidth))
}

func TestCloneToHeap_PreservesSizeAndStructure(t *testing.T) {
	src := newArena()
	dest := newArena()

	original, err := NewTuple(src, []Term{SmallInt(1), SmallInt(2)})
	require.NoError(t, err)

	clone, err := CloneToHeap(dest, original)
	require.NoError(t, err)
	require.Equal(t, SizeInWords(original), SizeInWords(clone))
	require.True(t, Equal(original, clone))
}

func TestCloneToHeap_ImmediatesAreReturnedAsIs(t *testing.T) {
	dest := newArena()
	clone, err := CloneToHeap(dest, SmallInt(5))
	require.NoError(t, err)
	v, _ := clone.SmallInteger()
	require.EqualValues(t, 5, v)
}

func TestSizeInWords_ImmediateIsZero(t *testing.T) {
	require.Zero(t, SizeInWords(SmallInt(1)))
	require.Zero(t, SizeInWords(Nil()))
}

func TestNewList_BuildsProperList(t *testing.T) {
	a := newArena()
	list, err := NewList(a, []Term{SmallInt(1), SmallInt(2), SmallInt(3)})
	require.NoError(t, err)
	require.True(t, IsList(list))
	require.False(t, IsNotList(list))
}

func TestNewBinaryAndSubBinary(t *testing.T) {
	a := newArena()
	bin, err := NewBinary(a, []byte("hello world"))
	require.NoError(t, err)
	require.True(t, IsBinary(bin))

	sub, err := NewSubBinary(a, bin, 0, 5, 0, 0)
	require.NoError(t, err)
	require.True(t, IsBitstring(sub))
}

func TestNewExportClosure(t *testing.T) {
	a := newArena()
	module := Intern("math")
	function := Intern("double")
	c, err := NewExportClosure(a, module, function, 1, func(args []Term) (Term, error) { return args[0], nil })
	require.NoError(t, err)
	require.True(t, IsFun(c))
	h, ok := c.Header()
	require.True(t, ok)
	require.Equal(t, KindClosure, h.Kind())
}
