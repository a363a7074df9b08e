package boxed

import (
	"math/big"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// Bignum is a boxed arbitrary-precision integer: a sign and base-2^32
// digits (spec section 3). math/big.Int is the canonical Go
// representation of exactly that shape — see DESIGN.md for why it is used
// in place of a pack-provided library.
type Bignum struct {
	value *big.Int
	size  int // container's own layout size in bytes, fixed by digit count at construction
}

// NewBignum allocates a Bignum holding a copy of v.
func NewBignum(a heap.Heap, v *big.Int) (*Bignum, error) {
	digitCount := uint64((v.BitLen() + 31) / 32)
	l, err := layout.BignumLayout(NativeWidth, digitCount)
	if err != nil {
		return nil, utils.WrapError("boxed: bignum layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating bignum", err)
	}
	return &Bignum{value: new(big.Int).Set(v), size: l.Size}, nil
}

// Value returns the bignum's value. The returned *big.Int must not be
// mutated by the caller — Bignum is immutable once constructed (spec
// section 3's lifecycle rule).
func (b *Bignum) Value() *big.Int { return b.value }

// Sign returns -1, 0, or 1 per the bignum's sign.
func (b *Bignum) Sign() int { return b.value.Sign() }

// Header implements term.Boxed.
func (b *Bignum) Header() term.Header {
	return term.NewHeader(term.KindBignum, layout.ArityWords(NativeWidth, b.size))
}

// SizeWords implements term.Boxed.
func (b *Bignum) SizeWords() uint64 {
	return uint64(b.size) / uint64(NativeWidth.WordSize())
}

func (b *Bignum) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewBignum(dest, b.value)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

func CompareBignum(a, b *Bignum) int {
	return a.value.Cmp(b.value)
}
