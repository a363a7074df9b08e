package beamterm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/term"
)

func TestRem2_HappyPath(t *testing.T) {
	a := newArena()
	result, err := Rem2(a, SmallInt(10), SmallInt(3))
	require.NoError(t, err)
	v, ok := result.SmallInteger()
	require.True(t, ok)
	require.EqualValues(t, 1, v)
}

func TestRem2_ByZeroRaisesBadarith(t *testing.T) {
	a := newArena()
	_, err := Rem2(a, SmallInt(1), SmallInt(0))
	require.ErrorIs(t, err, term.ErrBadarith)
}

func TestRem2_NonIntegerRaisesBadarith(t *testing.T) {
	a := newArena()
	f, err := NewFloat(a, 1.5)
	require.NoError(t, err)
	_, err = Rem2(a, f, SmallInt(1))
	require.ErrorIs(t, err, term.ErrBadarith)
}

func TestRem2_BignumDividend(t *testing.T) {
	a := newArena()
	big1 := new(big.Int).Lsh(big.NewInt(1), 100)
	bn1, err := boxed.NewBignum(a, big1)
	require.NoError(t, err)
	bigTerm := termFromBoxed(bn1)

	result, err := Rem2(a, bigTerm, SmallInt(7))
	require.NoError(t, err)
	require.True(t, IsInteger(result))
}

func TestNegate1_SmallInt(t *testing.T) {
	a := newArena()
	result, err := Negate1(a, SmallInt(5))
	require.NoError(t, err)
	v, _ := result.SmallInteger()
	require.EqualValues(t, -5, v)
}

func TestNegate1_Float(t *testing.T) {
	a := newArena()
	f, err := NewFloat(a, 2.5)
	require.NoError(t, err)
	result, err := Negate1(a, f)
	require.NoError(t, err)
	b, ok := result.Boxed()
	require.True(t, ok)
	neg := b.(*boxed.Float)
	require.Equal(t, -2.5, neg.Value())
}

func TestNegate1_NonNumberRaisesBadarith(t *testing.T) {
	a := newArena()
	_, err := Negate1(a, FromAtom("ok"))
	require.ErrorIs(t, err, term.ErrBadarith)
}

func termFromBoxed(b term.Boxed) Term {
	return term.FromBoxed(b, false)
}
