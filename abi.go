package beamterm

import (
	"fmt"

	"github.com/scigolib/beamterm/layout"
)

// widthFrom converts an ABI-facing uint32 pointer width into a
// layout.Width, rejecting anything but 32 or 64 deterministically (spec
// section 6).
func widthFrom(pointerWidth uint32) (layout.Width, error) {
	if pointerWidth != uint32(layout.Width32) && pointerWidth != uint32(layout.Width64) {
		return 0, fmt.Errorf("abi: unsupported pointer width %d (must be 32 or 64)", pointerWidth)
	}
	w := layout.Width(pointerWidth)
	if !w.Valid() {
		return 0, fmt.Errorf("abi: unsupported pointer width %d (must be 32 or 64)", pointerWidth)
	}
	return w, nil
}

// ClosureSizeBytes is the stable ABI symbol spec section 6 names
// explicitly: given a target pointer width and an environment length,
// returns the byte size of a Closure at that width. Delegates entirely to
// the Layout Calculator; carries no state of its own (spec section 4.8).
func ClosureSizeBytes(pointerWidth uint32, envLen uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.ClosureLayoutFor(w, uint64(envLen))
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

// TupleSizeBytes, ConsSizeBytes, BinarySizeBytes, BignumSizeBytes,
// MapSizeBytes, ReferenceSizeBytes, and FloatSizeBytes round out the ABI
// shim with the same integer-only, pointer-width-explicit contract for
// every other boxed kind (spec section 4.8).

func TupleSizeBytes(pointerWidth uint32, arity uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.TupleLayout(w, uint64(arity))
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

func ConsSizeBytes(pointerWidth uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.ConsLayout(w)
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

func BinarySizeBytes(pointerWidth uint32, byteLen uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.BinaryHeapLayout(w, uint64(byteLen))
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

func BignumSizeBytes(pointerWidth uint32, digitCount uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.BignumLayout(w, uint64(digitCount))
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

func MapSizeBytes(pointerWidth uint32, size uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.MapLayout(w, uint64(size))
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

func ReferenceSizeBytes(pointerWidth uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.ReferenceLayout(w)
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}

func FloatSizeBytes(pointerWidth uint32) (uint32, error) {
	w, err := widthFrom(pointerWidth)
	if err != nil {
		return 0, err
	}
	l, err := layout.FloatLayout(w)
	if err != nil {
		return 0, err
	}
	return uint32(l.Size), nil
}
