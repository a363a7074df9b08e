package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidth_WordSize(t *testing.T) {
	require.Equal(t, 4, Width32.WordSize())
	require.Equal(t, 8, Width64.WordSize())
}

func TestWidth_Valid(t *testing.T) {
	require.True(t, Width32.Valid())
	require.True(t, Width64.Valid())
	require.False(t, Width(16).Valid())
	require.False(t, Width(0).Valid())
}

func TestCalculate_SizeIsAlignmentMultiple(t *testing.T) {
	for _, width := range []Width{Width32, Width64} {
		l, err := Calculate(width, []Field{
			{Name: "a", Size: 1, Align: 1},
		}, 1, 1, 3)
		require.NoError(t, err)
		require.Zero(t, l.Size%l.Alignment, "size %d must be a multiple of alignment %d", l.Size, l.Alignment)
	}
}

func TestCalculate_Determinism(t *testing.T) {
	// Layout is a pure function of its inputs: same inputs, same offsets
	// and size (spec section 8, property 7).
	fields := []Field{
		{Name: "x", Size: 4, Align: 4},
		{Name: "y", Size: 8, Align: 8},
	}
	l1, err := Calculate(Width64, fields, 8, 8, 5)
	require.NoError(t, err)
	l2, err := Calculate(Width64, fields, 8, 8, 5)
	require.NoError(t, err)

	require.Equal(t, l1.Size, l2.Size)
	require.Equal(t, l1.Alignment, l2.Alignment)
	require.Equal(t, l1.Offsets, l2.Offsets)
}

func TestCalculate_OverflowRejected(t *testing.T) {
	_, err := Calculate(Width64, nil, 8, 8, ^uint64(0))
	require.Error(t, err)
}

func TestCalculate_ZeroElementsNeverOverflows(t *testing.T) {
	l, err := Calculate(Width64, nil, 8, 8, 0)
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestBaseSize_MatchesZeroElementCalculate(t *testing.T) {
	fields := []Field{{Name: "a", Size: 4, Align: 4}}
	base := BaseSize(Width64, fields, 8, 8)

	l, err := Calculate(Width64, fields, 8, 8, 0)
	require.NoError(t, err)
	require.Equal(t, l.Size, base)
}

func TestArityWords(t *testing.T) {
	// header(8) + 3 words of tail = 32 bytes at width64 -> arity 3.
	require.Equal(t, uint64(3), ArityWords(Width64, 32))
	// header(4) + 3 words of tail = 16 bytes at width32 -> arity 3.
	require.Equal(t, uint64(3), ArityWords(Width32, 16))
}

func TestClosureLayoutFor_OffsetsAreSequentialAndAligned(t *testing.T) {
	for _, width := range []Width{Width32, Width64} {
		cl, err := ClosureLayoutFor(width, 0)
		require.NoError(t, err)

		word := width.WordSize()
		require.Zero(t, cl.ModuleOffset%word)
		require.Zero(t, cl.ArityOffset%4)
		require.Zero(t, cl.DefinitionOffset%word)
		require.Zero(t, cl.NativeOffset%word)
		require.Zero(t, cl.EnvOffset%word)
		require.Zero(t, cl.Size%cl.Width.WordSize())

		require.True(t, cl.ModuleOffset < cl.ArityOffset)
		require.True(t, cl.ArityOffset <= cl.DefinitionOffset)
		require.True(t, cl.DefinitionOffset < cl.NativeOffset)
		require.True(t, cl.NativeOffset <= cl.EnvOffset)
	}
}

func TestClosureLayoutFor_EnvGrowsSizeByWord(t *testing.T) {
	base, err := ClosureLayoutFor(Width64, 0)
	require.NoError(t, err)
	withOne, err := ClosureLayoutFor(Width64, 1)
	require.NoError(t, err)

	require.Equal(t, base.Size+8, withOne.Size)
	require.Equal(t, base.EnvOffset, withOne.EnvOffset)
}

func TestClosureLayout32And64Differ(t *testing.T) {
	l32, err := ClosureLayout32(2)
	require.NoError(t, err)
	l64, err := ClosureLayout64(2)
	require.NoError(t, err)

	require.NotEqual(t, l32.Size, l64.Size)
	require.Equal(t, Width32, l32.Width)
	require.Equal(t, Width64, l64.Width)
}

func TestClosureBaseSizeWords(t *testing.T) {
	for _, width := range []Width{Width32, Width64} {
		base := ClosureBaseSize(width)
		words := ClosureBaseSizeWords(width)
		require.Equal(t, uint64(base)/uint64(width.WordSize()), words)

		// env_len = 0 round-trips: arity_words == base_size_words - 1 + 0.
		cl, err := ClosureLayoutFor(width, 0)
		require.NoError(t, err)
		arity := ArityWords(width, cl.Size)
		require.Equal(t, words-1, arity)
	}
}

func TestClosureLayout_ArityTracksEnvLen(t *testing.T) {
	for _, width := range []Width{Width32, Width64} {
		baseWords := ClosureBaseSizeWords(width)
		for envLen := uint64(0); envLen < 8; envLen++ {
			cl, err := ClosureLayoutFor(width, envLen)
			require.NoError(t, err)
			arity := ArityWords(width, cl.Size)
			require.Equal(t, baseWords-1+envLen, arity, "width=%d envLen=%d", width, envLen)
		}
	}
}

func TestObjectLayouts_SizeIsAlignmentMultiple(t *testing.T) {
	for _, width := range []Width{Width32, Width64} {
		checks := []func() (*Layout, error){
			func() (*Layout, error) { return TupleLayout(width, 5) },
			func() (*Layout, error) { return ConsLayout(width) },
			func() (*Layout, error) { return BinaryHeapLayout(width, 13) },
			func() (*Layout, error) { return BinarySubLayout(width) },
			func() (*Layout, error) { return BignumLayout(width, 7) },
			func() (*Layout, error) { return MapLayout(width, 3) },
			func() (*Layout, error) { return ReferenceLayout(width) },
		}
		for _, check := range checks {
			l, err := check()
			require.NoError(t, err)
			require.Zero(t, l.Size%l.Alignment)
		}
	}
}

func TestTupleLayout_ArityMatchesElementCount(t *testing.T) {
	l, err := TupleLayout(Width64, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), ArityWords(Width64, l.Size))

	l, err = TupleLayout(Width64, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(4), ArityWords(Width64, l.Size))
}
