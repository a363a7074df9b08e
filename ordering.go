package beamterm

import (
	"bytes"
	"math/big"

	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/term"
)

// category is a term's position in Erlang's inter-kind order (spec
// section 4.7): number < atom < reference < fun < port < pid < tuple <
// map < nil < list < bitstring.
type category int

const (
	catNumber category = iota
	catAtom
	catReference
	catFun
	catPort
	catPid
	catTuple
	catMap
	catNil
	catList
	catBitstring
	catUnknown
)

func categoryOf(t Term) category {
	switch t.ImmediateKind() {
	case term.ImmediateSmallInt:
		return catNumber
	case term.ImmediateAtom:
		return catAtom
	case term.ImmediatePort:
		return catPort
	case term.ImmediatePid:
		return catPid
	case term.ImmediateNil:
		return catNil
	}
	b, ok := t.Boxed()
	if !ok {
		return catUnknown
	}
	switch b.Header().Kind() {
	case term.KindBignum, term.KindFloat:
		return catNumber
	case term.KindReference:
		return catReference
	case term.KindClosure:
		return catFun
	case term.KindTuple:
		return catTuple
	case term.KindMap:
		return catMap
	case term.KindCons:
		return catList
	case term.KindBinaryHeap, term.KindBinarySub:
		return catBitstring
	default:
		return catUnknown
	}
}

// Compare implements Erlang term order (spec section 4.7): a total order
// across every kind, structural within a kind. Returns a negative number,
// zero, or a positive number; across kinds it is always -1 or 1, while
// some per-kind comparators (tuple and map size, closure module and
// arity) return the difference of the values compared.
func Compare(a, b Term) int {
	ca, cb := categoryOf(a), categoryOf(b)
	if ca != cb {
		if ca < cb {
			return -1
		}
		return 1
	}

	switch ca {
	case catNumber:
		return compareNumbers(a, b)
	case catAtom:
		aa, _ := a.Atom()
		ba, _ := b.Atom()
		return compareStrings(aa.String(), ba.String())
	case catReference:
		ra, _ := a.Boxed()
		rb, _ := b.Boxed()
		return boxed.CompareReference(ra.(*boxed.Reference), rb.(*boxed.Reference))
	case catFun:
		fa, _ := a.Boxed()
		fb, _ := b.Boxed()
		return boxed.CompareClosure(fa.(*boxed.Closure), fb.(*boxed.Closure), Compare)
	case catPort:
		pa, _ := a.Port()
		pb, _ := b.Port()
		return compareUint64(pa, pb)
	case catPid:
		pa, _ := a.Pid()
		pb, _ := b.Pid()
		return compareUint64(pa, pb)
	case catTuple:
		ta, _ := a.Boxed()
		tb, _ := b.Boxed()
		return boxed.CompareTuple(ta.(*boxed.Tuple), tb.(*boxed.Tuple), Compare)
	case catMap:
		ma, _ := a.Boxed()
		mb, _ := b.Boxed()
		return boxed.CompareMap(ma.(*boxed.Map), mb.(*boxed.Map), Compare)
	case catNil:
		return 0
	case catList:
		la, _ := a.Boxed()
		lb, _ := b.Boxed()
		return boxed.CompareCons(la.(*boxed.Cons), lb.(*boxed.Cons), Compare)
	case catBitstring:
		return compareBytes(binaryBytes(a), binaryBytes(b))
	default:
		return 0
	}
}

// Equal reports structural equality, consistent with Compare == 0 (spec
// section 4.7).
func Equal(a, b Term) bool { return Compare(a, b) == 0 }

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBytes(a, b []byte) int { return bytes.Compare(a, b) }

// binaryBytes returns the raw bytes of a boxed binary or sub-binary.
func binaryBytes(t Term) []byte {
	b, _ := t.Boxed()
	switch v := b.(type) {
	case *boxed.BinaryHeap:
		return v.Bytes()
	case *boxed.BinarySub:
		return v.Bytes()
	default:
		return nil
	}
}

// numericValue extracts t's numeric content as either an exact big.Int or
// an inexact float64 — small integers and bignums are exact, floats are
// not.
func numericValue(t Term) (exact bool, i *big.Int, f float64) {
	if v, ok := t.SmallInteger(); ok {
		return true, big.NewInt(v), 0
	}
	b, _ := t.Boxed()
	switch v := b.(type) {
	case *boxed.Bignum:
		return true, v.Value(), 0
	case *boxed.Float:
		return false, nil, v.Value()
	}
	return false, nil, 0
}

// compareNumbers implements mixed integer/float ordering: two exact
// values compare exactly; any float involved compares as float64 (spec
// section 4.7's "mixed integer/float comparison" rule, the `==`
// arithmetic-equality semantics applied to ordering).
func compareNumbers(a, b Term) int {
	aExact, aInt, aFloat := numericValue(a)
	bExact, bInt, bFloat := numericValue(b)
	if aExact && bExact {
		return aInt.Cmp(bInt)
	}
	if aExact {
		aFloat, _ = new(big.Float).SetInt(aInt).Float64()
	}
	if bExact {
		bFloat, _ = new(big.Float).SetInt(bInt).Float64()
	}
	switch {
	case aFloat < bFloat:
		return -1
	case aFloat > bFloat:
		return 1
	default:
		return 0
	}
}
