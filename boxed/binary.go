package boxed

import (
	"bytes"
	"fmt"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// BinaryHeap is a heap-resident binary: a byte length field followed by
// the raw byte sequence (spec section 3). Every BinarySub ultimately
// refers to one of these.
type BinaryHeap struct {
	data []byte
	size int // container's own layout size in bytes, fixed by byte length at construction
}

// NewBinaryHeap allocates a BinaryHeap holding a copy of data.
func NewBinaryHeap(a heap.Heap, data []byte) (*BinaryHeap, error) {
	l, err := layout.BinaryHeapLayout(NativeWidth, uint64(len(data)))
	if err != nil {
		return nil, utils.WrapError("boxed: binary layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating binary", err)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &BinaryHeap{data: cp, size: l.Size}, nil
}

// Bytes returns the binary's byte contents.
func (b *BinaryHeap) Bytes() []byte { return b.data }

// ByteLen returns the binary's length in bytes.
func (b *BinaryHeap) ByteLen() int { return len(b.data) }

// Header implements term.Boxed.
func (b *BinaryHeap) Header() term.Header {
	return term.NewHeader(term.KindBinaryHeap, layout.ArityWords(NativeWidth, b.size))
}

// SizeWords implements term.Boxed. A binary's bytes have no boxed
// children, so this is simply the container's own word count.
func (b *BinaryHeap) SizeWords() uint64 {
	return uint64(b.size) / uint64(NativeWidth.WordSize())
}

func (b *BinaryHeap) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewBinaryHeap(dest, b.data)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

func CompareBinaryHeap(a, b *BinaryHeap) int {
	return bytes.Compare(a.data, b.data)
}

// BinarySub is a view over a byte range of an existing BinaryHeap, shared
// rather than copied (spec section 4.5): "Binary sub-ranges must keep a
// reference to their original binary; the reference participates in size
// accounting only for the pointer itself." bitOffset/bitLen record a
// sub-range whose boundary does not fall on a byte boundary.
// term.IsBinary and term.IsBitstring do not consult them; both report
// true for every BinarySub.
type BinarySub struct {
	original   *BinaryHeap
	byteOffset uint64
	byteLen    uint64
	bitOffset  uint32
	bitLen     uint32
	size       int // container's own layout size in bytes; a sub-binary's shape never varies
}

// NewBinarySub allocates a BinarySub viewing original[byteOffset :
// byteOffset+byteLen], with bitOffset/bitLen describing any partial-byte
// boundary. original is not cloned or copied — its bytes are shared.
func NewBinarySub(a heap.Heap, original *BinaryHeap, byteOffset, byteLen uint64, bitOffset, bitLen uint32) (*BinarySub, error) {
	if byteOffset+byteLen > uint64(len(original.data)) {
		return nil, fmt.Errorf("sub-binary range [%d,%d) exceeds original length %d: %w", byteOffset, byteOffset+byteLen, len(original.data), term.ErrBadarg)
	}
	l, err := layout.BinarySubLayout(NativeWidth)
	if err != nil {
		return nil, utils.WrapError("boxed: sub-binary layout", err)
	}
	if _, err := a.Reserve(l); err != nil {
		return nil, utils.WrapError("boxed: allocating sub-binary", err)
	}
	return &BinarySub{
		original:   original,
		byteOffset: byteOffset,
		byteLen:    byteLen,
		bitOffset:  bitOffset,
		bitLen:     bitLen,
		size:       l.Size,
	}, nil
}

// Bytes returns the shared byte range this sub-binary views.
func (s *BinarySub) Bytes() []byte {
	return s.original.data[s.byteOffset : s.byteOffset+s.byteLen]
}

// Original, ByteOffset, ByteLen, BitOffset, and BitLen are the sub-range's
// immutable field accessors.
func (s *BinarySub) Original() *BinaryHeap { return s.original }
func (s *BinarySub) ByteOffset() uint64    { return s.byteOffset }
func (s *BinarySub) SubByteLen() uint64    { return s.byteLen }
func (s *BinarySub) BitOffset() uint32     { return s.bitOffset }
func (s *BinarySub) SubBitLen() uint32     { return s.bitLen }

// Header implements term.Boxed.
func (s *BinarySub) Header() term.Header {
	return term.NewHeader(term.KindBinarySub, layout.ArityWords(NativeWidth, s.size))
}

// SizeWords implements term.Boxed: the sub-range's own fixed fields, plus
// only the pointer cost of referencing original — not its full byte
// length, since those bytes are shared rather than owned (spec section
// 4.5).
func (s *BinarySub) SizeWords() uint64 {
	return uint64(s.size) / uint64(NativeWidth.WordSize())
}

// cloneTo clones the referenced original binary onto dest (so the clone
// carries no pointer into the source heap, per the Clone-to-Heap
// contract) and builds a new sub-range over the clone with the same
// offsets. This does not charge the original's full bytes against this
// sub-binary's own size_in_words, matching SizeWords above.
func (s *BinarySub) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clonedOriginal, err := s.original.cloneTo(dest)
	if err != nil {
		return term.Term{}, err
	}
	b, _ := clonedOriginal.Boxed()
	clone, err := NewBinarySub(dest, b.(*BinaryHeap), s.byteOffset, s.byteLen, s.bitOffset, s.bitLen)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

func CompareBinarySub(a, b *BinarySub) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}
