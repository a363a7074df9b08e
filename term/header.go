// Package term defines the tagged-term encoding: the bit representation of
// immediates and of boxed pointers, and the single-word Header every boxed
// object is prefixed with (spec sections 3 and 4.2).
//
// Concrete boxed object kinds live in package boxed, which imports this
// package; term itself only knows the Boxed interface shape, to keep the
// dependency direction one-way.
package term

// Kind identifies a boxed object's runtime family. A Header packs a Kind
// into its low bits alongside the object's arity-in-words, so heap walkers
// can skip any object without consulting a type table (spec section 3).
type Kind uint8

const (
	KindClosure Kind = iota
	KindTuple
	KindCons
	KindBinaryHeap
	KindBinarySub
	KindBignum
	KindMap
	KindReference
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindClosure:
		return "closure"
	case KindTuple:
		return "tuple"
	case KindCons:
		return "cons"
	case KindBinaryHeap:
		return "binary"
	case KindBinarySub:
		return "sub_binary"
	case KindBignum:
		return "bignum"
	case KindMap:
		return "map"
	case KindReference:
		return "reference"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

const kindBits = 4
const kindMask = Word(1<<kindBits) - 1

// Header is the single machine word prefixing every boxed object. It packs
// the object's Kind into the low kindBits bits and its arity-in-words —
// (total_byte_size - header_size) / word_size — into the rest.
type Header Word

// NewHeader packs a Kind and an arity-in-words into a Header.
func NewHeader(k Kind, arityWords uint64) Header {
	return Header(Word(arityWords)<<kindBits | Word(k)&kindMask)
}

// Kind unpacks the runtime kind from a Header.
func (h Header) Kind() Kind {
	return Kind(Word(h) & kindMask)
}

// ArityWords unpacks the arity-in-words from a Header.
func (h Header) ArityWords() uint64 {
	return uint64(Word(h) >> kindBits)
}

// Boxed is implemented by every heap-resident object kind (package boxed).
// It is the minimal surface the term and heap packages need without
// importing boxed's concrete types, which would create an import cycle
// (boxed imports term and heap).
type Boxed interface {
	// Header returns this object's packed kind + arity-in-words.
	Header() Header

	// SizeWords is this object's total size in words, including its own
	// header and recursively the size of every boxed child — the
	// size_in_words the Clone-to-Heap protocol's size-preservation
	// invariant is defined over (spec section 4.6).
	SizeWords() uint64
}
