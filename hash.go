package beamterm

import (
	"encoding/binary"
	"math/big"

	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/internal/utils"
)

// Hash returns a hash of t consistent with Equal (spec section 4.7,
// section 8 property 6): Equal(a, b) implies Hash(a) == Hash(b). Numbers
// are encoded as a canonical float64 regardless of exactness, so an
// integer and an arithmetically-equal float hash identically, matching
// compareNumbers' mixed-number rule.
//
// Hashing is a hot path on large terms (map keys, process dictionaries),
// so the scratch encoding buffer is pooled rather than freshly allocated
// on every call.
func Hash(t Term) uint64 {
	buf := utils.GetBuffer(0)
	buf = encodeForHash(t, buf)
	h := hashBytes(buf)
	utils.ReleaseBuffer(buf)
	return h
}

func encodeForHash(t Term, buf []byte) []byte {
	buf = append(buf, byte(categoryOf(t)))

	switch categoryOf(t) {
	case catNumber:
		_, i, f := numericValue(t)
		if i != nil {
			f, _ = new(big.Float).SetInt(i).Float64()
		}
		return appendFloat64(buf, f)
	case catAtom:
		a, _ := t.Atom()
		return append(buf, []byte(a.String())...)
	case catPort:
		id, _ := t.Port()
		return appendUint64(buf, id)
	case catPid:
		id, _ := t.Pid()
		return appendUint64(buf, id)
	case catNil:
		return buf
	case catReference:
		b, _ := t.Boxed()
		r := b.(*boxed.Reference)
		buf = appendUint64(buf, uint64(r.NodeID()))
		buf = appendUint64(buf, uint64(r.Creation()))
		return appendUint64(buf, r.Counter())
	case catFun:
		b, _ := t.Boxed()
		c := b.(*boxed.Closure)
		buf = append(buf, []byte(c.Module().String())...)
		buf = appendUint64(buf, uint64(c.Arity()))
		for _, e := range c.Env() {
			buf = encodeForHash(e, buf)
		}
		return buf
	case catTuple:
		b, _ := t.Boxed()
		tup := b.(*boxed.Tuple)
		for _, e := range tup.Elements() {
			buf = encodeForHash(e, buf)
		}
		return buf
	case catMap:
		b, _ := t.Boxed()
		m := b.(*boxed.Map)
		for _, p := range m.Pairs() {
			buf = encodeForHash(p.Key, buf)
			buf = encodeForHash(p.Value, buf)
		}
		return buf
	case catList:
		b, _ := t.Boxed()
		cons := b.(*boxed.Cons)
		buf = encodeForHash(cons.Head(), buf)
		return encodeForHash(cons.Tail(), buf)
	case catBitstring:
		return append(buf, binaryBytes(t)...)
	default:
		return buf
	}
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendFloat64(buf []byte, v float64) []byte {
	return appendUint64(buf, uint64(int64(v*1e9)))
}
