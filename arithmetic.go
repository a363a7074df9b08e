package beamterm

import (
	"fmt"
	"math/big"

	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/term"
)

// Rem2 implements the `rem/2` BIF: integer remainder. Both operands must
// be integers (small int or bignum); rem(x, 0) and rem on any non-integer
// both raise Badarith (spec section 8's boundary behaviors). a is where a
// bignum-sized result, if any, is allocated.
func Rem2(a Heap, x, y Term) (Term, error) {
	xi, xok := asExactInt(x)
	yi, yok := asExactInt(y)
	if !xok || !yok {
		return Term{}, fmt.Errorf("rem/2 requires two integers: %w", term.ErrBadarith)
	}
	if yi.Sign() == 0 {
		return Term{}, fmt.Errorf("rem/2 by zero: %w", term.ErrBadarith)
	}
	return intResult(a, new(big.Int).Rem(xi, yi))
}

// Negate1 implements the `negate/1` BIF: arithmetic negation. Non-numbers
// raise Badarith (spec section 8).
func Negate1(a Heap, t Term) (Term, error) {
	if i, ok := asExactInt(t); ok {
		return intResult(a, new(big.Int).Neg(i))
	}
	if b, ok := t.Boxed(); ok {
		if f, ok := b.(*boxed.Float); ok {
			fl, err := boxed.NewFloat(a, -f.Value())
			if err != nil {
				return Term{}, err
			}
			return term.FromBoxed(fl, false), nil
		}
	}
	return Term{}, fmt.Errorf("negate/1 on a non-number: %w", term.ErrBadarith)
}

// asExactInt extracts an integer term's exact value, if it is one (small
// int or bignum); floats are not exact integers for this purpose.
func asExactInt(t Term) (*big.Int, bool) {
	if v, ok := t.SmallInteger(); ok {
		return big.NewInt(v), true
	}
	b, ok := t.Boxed()
	if !ok {
		return nil, false
	}
	bn, ok := b.(*boxed.Bignum)
	if !ok {
		return nil, false
	}
	return bn.Value(), true
}

// intResult packs v as a small integer term if it fits, or allocates a
// Bignum on a otherwise.
func intResult(a Heap, v *big.Int) (Term, error) {
	if v.IsInt64() && term.FitsSmallInt(v.Int64()) {
		return term.SmallInt(v.Int64()), nil
	}
	bn, err := boxed.NewBignum(a, v)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(bn, false), nil
}
