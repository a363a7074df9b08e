package term

import "github.com/scigolib/beamterm/atom"

// Word is the abstract machine word a Term's tag bits live in. It is kept
// distinct from uintptr because, unlike a native BEAM runtime, boxed
// payloads here are ordinary Go values reachable through Term.box — Word
// only ever carries tag bits and, for immediates, the packed payload.
type Word uint64

// Primary tag occupying the low 2 bits of Word.
const (
	tagBoxed          Word = 0b00 // boxed pointer, not in the literal region
	tagSmallInt       Word = 0b01 // signed integer in the remaining bits
	tagImmediateExtra Word = 0b10 // secondary tag in bits 2-3 selects atom/pid/port/nil
	tagLiteralBoxed   Word = 0b11 // boxed pointer, read-only literal region
)

const primaryTagBits = 2
const primaryMask = Word(1<<primaryTagBits) - 1

// Secondary tag occupying bits 2-3 of Word when the primary tag is
// tagImmediateExtra.
const (
	subAtom Word = 0b00
	subPid  Word = 0b01
	subPort Word = 0b10
	subNil  Word = 0b11
)

const secondaryTagBits = 2
const secondaryMask = Word(1<<secondaryTagBits) - 1
const secondaryShift = primaryTagBits
const payloadShift = primaryTagBits + secondaryTagBits

// Term is a single tagged value: either an immediate (small integer, atom,
// local pid, local port, or nil) encoded entirely in word, or a tagged
// pointer to a boxed heap object held in box. Exactly one of "word encodes
// an immediate" or "box != nil" holds for any valid Term.
type Term struct {
	word Word
	box  Boxed
}

// IsImmediate reports whether t is an immediate value.
func (t Term) IsImmediate() bool {
	return t.box == nil
}

// IsBoxed reports whether t is a tagged pointer to a heap object.
func (t Term) IsBoxed() bool {
	return t.box != nil
}

// IsLiteral reports whether t is a boxed term flagged as living in the
// read-only literal region (spec section 5). Immediates are never
// literal-flagged; the flag exists precisely to let Clone-to-Heap skip
// copying read-only data.
func (t Term) IsLiteral() bool {
	return t.box != nil && t.word&primaryMask == tagLiteralBoxed
}

// Boxed returns the boxed payload and true if t is boxed.
func (t Term) Boxed() (Boxed, bool) {
	if t.box == nil {
		return nil, false
	}
	return t.box, true
}

// FromBoxed tags b as a boxed pointer term. literal marks it as living in
// the read-only literal region.
func FromBoxed(b Boxed, literal bool) Term {
	w := tagBoxed
	if literal {
		w = tagLiteralBoxed
	}
	return Term{word: w, box: b}
}

// MaxSmallInt and MinSmallInt bound the range an immediate small integer
// can hold: word_bits - tag_bits, i.e. 62 bits on a 64-bit Word. Values
// outside this range belong in a Bignum instead.
const (
	MaxSmallInt = int64(1)<<61 - 1
	MinSmallInt = -(int64(1) << 61)
)

// FitsSmallInt reports whether v can be represented as an immediate small
// integer without truncation.
func FitsSmallInt(v int64) bool {
	return v >= MinSmallInt && v <= MaxSmallInt
}

// SmallInt constructs an immediate signed integer term. The value must fit
// in word_bits - tag_bits (62 bits on a 64-bit Word); values outside that
// range belong in a Bignum instead.
func SmallInt(v int64) Term {
	return Term{word: Word(v)<<primaryTagBits | tagSmallInt}
}

// SmallInteger projects t as a small integer. ok is false if t is not a
// small integer.
func (t Term) SmallInteger() (value int64, ok bool) {
	if t.box != nil || t.word&primaryMask != tagSmallInt {
		return 0, false
	}
	// Arithmetic (sign-extending) right shift recovers the signed value.
	return int64(t.word) >> primaryTagBits, true
}

// FromAtom constructs an immediate atom term.
func FromAtom(a atom.Atom) Term {
	return Term{word: Word(a)<<payloadShift | subAtom<<secondaryShift | tagImmediateExtra}
}

// Atom projects t as an atom. ok is false if t is not an atom.
func (t Term) Atom() (a atom.Atom, ok bool) {
	if !t.isImmediateExtra(subAtom) {
		return 0, false
	}
	return atom.Atom(t.word >> payloadShift), true
}

// FromPid constructs an immediate local process identifier term.
func FromPid(id uint64) Term {
	return Term{word: Word(id)<<payloadShift | subPid<<secondaryShift | tagImmediateExtra}
}

// Pid projects t as a local pid. ok is false if t is not a pid.
func (t Term) Pid() (id uint64, ok bool) {
	if !t.isImmediateExtra(subPid) {
		return 0, false
	}
	return uint64(t.word >> payloadShift), true
}

// FromPort constructs an immediate local port identifier term.
func FromPort(id uint64) Term {
	return Term{word: Word(id)<<payloadShift | subPort<<secondaryShift | tagImmediateExtra}
}

// Port projects t as a local port. ok is false if t is not a port.
func (t Term) Port() (id uint64, ok bool) {
	if !t.isImmediateExtra(subPort) {
		return 0, false
	}
	return uint64(t.word >> payloadShift), true
}

// Nil is the empty-list immediate.
func Nil() Term {
	return Term{word: subNil<<secondaryShift | tagImmediateExtra}
}

// IsNil reports whether t is the empty-list immediate.
func (t Term) IsNil() bool {
	return t.isImmediateExtra(subNil)
}

func (t Term) isImmediateExtra(sub Word) bool {
	if t.box != nil || t.word&primaryMask != tagImmediateExtra {
		return false
	}
	return (t.word>>secondaryShift)&secondaryMask == sub
}

// Header returns the header of a boxed term, or false for an immediate.
func (t Term) Header() (Header, bool) {
	if t.box == nil {
		return 0, false
	}
	return t.box.Header(), true
}

// ImmediateKind classifies an immediate term for dispatch purposes. A
// boxed term classifies as ImmediateNone; its Header's Kind identifies it.
type ImmediateKind uint8

const (
	ImmediateNone ImmediateKind = iota
	ImmediateSmallInt
	ImmediateAtom
	ImmediatePid
	ImmediatePort
	ImmediateNil
)

// ImmediateKind classifies an immediate term; returns ImmediateNone for a
// boxed term.
func (t Term) ImmediateKind() ImmediateKind {
	if t.box != nil {
		return ImmediateNone
	}
	switch t.word & primaryMask {
	case tagSmallInt:
		return ImmediateSmallInt
	case tagImmediateExtra:
		switch (t.word >> secondaryShift) & secondaryMask {
		case subAtom:
			return ImmediateAtom
		case subPid:
			return ImmediatePid
		case subPort:
			return ImmediatePort
		case subNil:
			return ImmediateNil
		}
	}
	return ImmediateNone
}
