package beamterm

import (
	"github.com/scigolib/beamterm/atom"
	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

// Term, Header, and Atom are re-exported here so consumers depend on one
// package rather than reaching into term/atom directly (spec section 4.2,
// section 6's "consumer interfaces the core exposes").
type (
	Term   = term.Term
	Header = term.Header
	Atom   = atom.Atom
	Word   = term.Word
)

// Heap and TermAlloc are re-exported for the same reason.
type (
	Heap      = heap.Heap
	TermAlloc = heap.TermAlloc
)

// Intern returns the Atom for name, interning it on first use.
func Intern(name string) Atom {
	return atom.Intern(name)
}

// SmallInt, Nil, FromAtom, FromPid, and FromPort construct immediate
// terms (spec section 4.2).
func SmallInt(v int64) Term     { return term.SmallInt(v) }
func Nil() Term                 { return term.Nil() }
func FromAtom(name string) Term { return term.FromAtom(atom.Intern(name)) }
func FromPid(id uint64) Term    { return term.FromPid(id) }
func FromPort(id uint64) Term   { return term.FromPort(id) }

// NewTuple, NewCons, NewList, NewBinary, NewSubBinary, NewBignum, NewMap,
// NewReference, NewFloat, NewExportClosure, and NewAnonymousClosure are
// the per-object-kind builders spec section 6 asks the core to expose,
// each taking a heap and content and returning a boxed Term.

// NewTuple builds a Tuple term from elements, cloning each onto a.
func NewTuple(a TermAlloc, elements []Term) (Term, error) {
	t, err := boxed.NewTupleFromSlice(a, elements)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(t, false), nil
}

// NewCons builds a single list cell.
func NewCons(a TermAlloc, head, tail Term) (Term, error) {
	c, err := boxed.NewCons(a, head, tail)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(c, false), nil
}

// NewList builds a proper, nil-terminated list from elements.
func NewList(a TermAlloc, elements []Term) (Term, error) {
	return boxed.ListFromSlice(a, elements)
}

// NewBinary builds a heap-resident binary from data.
func NewBinary(a Heap, data []byte) (Term, error) {
	b, err := boxed.NewBinaryHeap(a, data)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(b, false), nil
}

// NewSubBinary builds a binary sub-range sharing original's bytes.
// original must itself be a heap binary term built by NewBinary.
func NewSubBinary(a Heap, original Term, byteOffset, byteLen uint64, bitOffset, bitLen uint32) (Term, error) {
	ob, ok := original.Boxed()
	if !ok {
		return Term{}, term.ErrType
	}
	bh, ok := ob.(*boxed.BinaryHeap)
	if !ok {
		return Term{}, term.ErrType
	}
	s, err := boxed.NewBinarySub(a, bh, byteOffset, byteLen, bitOffset, bitLen)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(s, false), nil
}

// NewMap builds a Map from pairs, cloning every key and value onto a.
func NewMap(a TermAlloc, pairs []boxed.MapPair) (Term, error) {
	m, err := boxed.NewMapFromPairs(a, pairs)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(m, false), nil
}

// NewReference builds a boxed reference.
func NewReference(a Heap, nodeID, creation uint32, counter uint64) (Term, error) {
	r, err := boxed.NewReference(a, nodeID, creation, counter)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(r, false), nil
}

// NewFloat builds a boxed float.
func NewFloat(a Heap, v float64) (Term, error) {
	f, err := boxed.NewFloat(a, v)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(f, false), nil
}

// NewExportClosure builds a closure capturing a named
// Module:Function/Arity export.
func NewExportClosure(a Heap, module Atom, function Atom, arity uint32, native boxed.NativeFunc) (Term, error) {
	c, err := boxed.NewUninitializedClosure(a, module, boxed.NewExportDefinition(function), arity, native, 0)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(c, false), nil
}

// NewAnonymousClosure builds a fun from a slice of already-computed
// environment terms, cloning any non-immediate element onto a.
func NewAnonymousClosure(a TermAlloc, module Atom, index uint32, unique [16]byte, oldUnique uint32, arity uint32, native boxed.NativeFunc, env []Term) (Term, error) {
	def := boxed.NewAnonymousDefinition(index, unique, oldUnique)
	c, err := boxed.NewClosureFromSlice(a, module, def, arity, native, env)
	if err != nil {
		return Term{}, err
	}
	return term.FromBoxed(c, false), nil
}

// CloneToHeap implements the Clone-to-Heap protocol entry point (spec
// section 4.6): a deep copy of t onto dest that shares no mutable
// sub-term with t. Literal-flagged terms and immediates are returned as
// t itself.
func CloneToHeap(dest TermAlloc, t Term) (Term, error) {
	if t.IsLiteral() {
		return t, nil
	}
	b, ok := t.Boxed()
	if !ok {
		return t, nil
	}
	return dest.CloneSubTerm(b)
}

// SizeInWords returns t's total size in words: 0 for an immediate, or the
// boxed object's own SizeWords (spec section 4.6, section 8 property 1
// and 3).
func SizeInWords(t Term) uint64 {
	b, ok := t.Boxed()
	if !ok {
		return 0
	}
	return b.SizeWords()
}
