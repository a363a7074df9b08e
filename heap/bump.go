package heap

import (
	"fmt"
	"sort"

	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
)

// reservedBlock tracks one reservation's charged range, purely for the
// overlap-validation and debugging helpers below; BumpHeap itself never
// consults this slice to decide the next Address.
type reservedBlock struct {
	Offset uint64
	Size   uint64
}

// BumpHeap is a bump-pointer accounting allocator: every reservation is
// charged at the current end of the budget, the budget grows to fit
// (unless bounded), and space is never reclaimed or reused. This is the
// simplest implementation of the Heap capability (spec section 4.3); a
// freelist or a thin wrapper over a system allocator would satisfy the
// same interface.
//
// Not thread-safe: a heap is owned by exactly one process (spec section
// 5); concurrent calls to Reserve are undefined behavior.
type BumpHeap struct {
	width   layout.Width
	used    uint64
	maxSize uint64 // 0 means unbounded
	blocks  []reservedBlock
}

// NewBumpHeap creates an unbounded bump allocator for the given pointer
// width.
func NewBumpHeap(width layout.Width) *BumpHeap {
	return &BumpHeap{width: width}
}

// NewBoundedBumpHeap is like NewBumpHeap but rejects any reservation that
// would push total usage past maxSize, returning ErrOutOfMemory instead of
// growing without limit. Useful for simulating a process with a
// configured heap limit.
func NewBoundedBumpHeap(width layout.Width, maxSize uint64) *BumpHeap {
	h := NewBumpHeap(width)
	h.maxSize = maxSize
	return h
}

// Reserve charges space for l at the current end of the budget.
func (h *BumpHeap) Reserve(l *layout.Layout) (Address, error) {
	if l == nil || l.Size <= 0 {
		return 0, fmt.Errorf("heap: cannot reserve a layout of size %v", l)
	}

	size := uint64(l.Size)
	if h.maxSize > 0 && h.used+size > h.maxSize {
		return 0, ErrOutOfMemory
	}

	addr := h.used
	newUsed, err := utils.SafeAdd(addr, size)
	if err != nil {
		return 0, fmt.Errorf("heap: %w: %w", ErrOutOfMemory, err)
	}
	h.blocks = append(h.blocks, reservedBlock{Offset: addr, Size: size})
	h.used = newUsed

	return Address(addr), nil
}

// Used returns the number of bytes reserved so far.
func (h *BumpHeap) Used() uint64 {
	return h.used
}

// Width is the pointer width this heap's layouts were computed at.
func (h *BumpHeap) Width() layout.Width {
	return h.width
}

// Blocks returns a copy of all reserved blocks, sorted by offset. Useful
// for tests and debugging; the allocator's own correctness never depends
// on this list.
func (h *BumpHeap) Blocks() []reservedBlock {
	blocks := make([]reservedBlock, len(h.blocks))
	copy(blocks, h.blocks)
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Offset < blocks[j].Offset })
	return blocks
}

// ValidateNoOverlaps checks that no two reserved blocks overlap. With a
// pure bump allocator this can only fail if the allocator itself has a
// bug; it exists to make that bug loud in tests rather than silent in
// production.
func (h *BumpHeap) ValidateNoOverlaps() error {
	blocks := h.Blocks()
	for i := 0; i < len(blocks)-1; i++ {
		cur, next := blocks[i], blocks[i+1]
		if cur.Offset+cur.Size > next.Offset {
			return fmt.Errorf("heap: overlap detected: block at %d (size %d) overlaps block at %d", cur.Offset, cur.Size, next.Offset)
		}
	}
	return nil
}
