package boxed

import (
	"fmt"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// MapPair is one key/value entry of a boxed Map, kept in insertion order
// so Pairs() is deterministic (Erlang maps with small_map representation
// preserve a flat pair order; hash-array-mapped-trie layout for large
// maps is out of scope here, matching spec section 3's flat "size, then
// key/value Term pairs" shape).
type MapPair struct {
	Key   term.Term
	Value term.Term
}

// Map is a boxed key/value collection: a size field followed by size
// key/value Term pairs (spec section 3).
type Map struct {
	pairs []MapPair
	size  int // container's own layout size in bytes, fixed by pair count at construction
}

// NewMapFromPairs allocates a Map and clones every key and value onto a.
func NewMapFromPairs(a heap.TermAlloc, pairs []MapPair) (*Map, error) {
	l, err := layout.MapLayout(NativeWidth, uint64(len(pairs)))
	if err != nil {
		return nil, utils.WrapError("boxed: map layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating map", err)
	}
	m := &Map{pairs: make([]MapPair, len(pairs)), size: l.Size}
	for i, p := range pairs {
		k, err := cloneTerm(a, p.Key)
		if err != nil {
			return nil, fmt.Errorf("boxed: cloning map key %d: %w", i, err)
		}
		v, err := cloneTerm(a, p.Value)
		if err != nil {
			return nil, fmt.Errorf("boxed: cloning map value %d: %w", i, err)
		}
		m.pairs[i] = MapPair{Key: k, Value: v}
	}
	return m, nil
}

// Size returns the number of key/value pairs.
func (m *Map) Size() int { return len(m.pairs) }

// Pairs returns the map's key/value pairs.
func (m *Map) Pairs() []MapPair { return m.pairs }

// Get looks up key by structural equality, using cmpTerm (supplied by the
// root facade, the only package with full type knowledge for comparing
// arbitrary terms) to decide equality.
func (m *Map) Get(key term.Term, cmpTerm func(x, y term.Term) int) (term.Term, bool) {
	for _, p := range m.pairs {
		if cmpTerm(p.Key, key) == 0 {
			return p.Value, true
		}
	}
	return term.Term{}, false
}

// Header implements term.Boxed.
func (m *Map) Header() term.Header {
	return term.NewHeader(term.KindMap, layout.ArityWords(NativeWidth, m.size))
}

// SizeWords implements term.Boxed.
func (m *Map) SizeWords() uint64 {
	total := uint64(m.size) / uint64(NativeWidth.WordSize())
	for _, p := range m.pairs {
		total += subTermWords(p.Key)
		total += subTermWords(p.Value)
	}
	return total
}

func (m *Map) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewMapFromPairs(dest, m.pairs)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

// CompareMap orders two maps by size first, then pair by pair in their
// stored (insertion) order, matching the tuple-like structural order the
// rest of the boxed family uses. Pairs are not sorted by key first, by
// this function or by its caller in ordering.go, so two maps holding the
// same pairs in different insertion orders do not compare equal.
func CompareMap(a, b *Map, cmpTerm func(x, y term.Term) int) int {
	if len(a.pairs) != len(b.pairs) {
		return len(a.pairs) - len(b.pairs)
	}
	for i := range a.pairs {
		if d := cmpTerm(a.pairs[i].Key, b.pairs[i].Key); d != 0 {
			return d
		}
		if d := cmpTerm(a.pairs[i].Value, b.pairs[i].Value); d != 0 {
			return d
		}
	}
	return 0
}
