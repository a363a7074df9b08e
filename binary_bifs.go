package beamterm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/scigolib/beamterm/term"
)

// BinaryToFloat1 implements `binary_to_float/1` (spec section 8, scenario
// 5, and the boundary behaviors: a string with no decimal point, or a
// magnitude exceeding f64::MAX, both raise Badarg). t must be a binary or
// sub-binary holding the ASCII text of a float literal.
func BinaryToFloat1(a Heap, t Term) (Term, error) {
	data := binaryBytes(t)
	if data == nil {
		return Term{}, fmt.Errorf("binary_to_float/1 requires a binary: %w", term.ErrType)
	}
	s := string(data)
	if !strings.Contains(s, ".") {
		return Term{}, fmt.Errorf("binary_to_float/1: %q has no decimal point: %w", s, term.ErrBadarg)
	}
	v, err := strconv.ParseFloat(s, 64)
	// ParseFloat reports an out-of-range magnitude as an error with v set
	// to ±Inf, so the infinity case is checked before the generic one.
	if math.IsInf(v, 0) {
		return Term{}, fmt.Errorf("binary_to_float/1: %q exceeds float range (infinity): %w", s, term.ErrBadarg)
	}
	if err != nil {
		return Term{}, fmt.Errorf("binary_to_float/1: %q is not a float: %w", s, term.ErrBadarg)
	}
	return NewFloat(a, v)
}
