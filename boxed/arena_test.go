package boxed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

func TestArena_CloneSubTermRejectsUnknownKind(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	_, err := arena.CloneSubTerm(unknownBoxed{})
	require.Error(t, err)
}

type unknownBoxed struct{}

func (unknownBoxed) Header() term.Header { return term.NewHeader(term.KindTuple, 0) }
func (unknownBoxed) SizeWords() uint64   { return 1 }

func TestArena_LiteralTermsAreNotCloned(t *testing.T) {
	src := NewArena(heap.NewBumpHeap(NativeWidth))
	dest := NewArena(heap.NewBumpHeap(NativeWidth))

	literalTuple, err := NewTupleFromSlice(src, []term.Term{term.SmallInt(1)})
	require.NoError(t, err)
	literal := term.FromBoxed(literalTuple, true)

	outer, err := NewTupleFromSlice(dest, []term.Term{literal})
	require.NoError(t, err)

	b, ok := outer.Elements()[0].Boxed()
	require.True(t, ok)
	require.Same(t, literalTuple, b)
}
