package term

import "errors"

// The term core's error taxonomy (spec section 7). These are sentinel
// values: callers compare with errors.Is. An error of one of these kinds
// wraps its sentinel (with fmt.Errorf's %w or internal/utils.WrapError),
// so the sentinel survives errors.Is through any amount of
// context-wrapping. Errors outside the taxonomy, such as a layout overflow
// or an invalid Reserve argument, wrap none of them.
var (
	// ErrType is raised by projecting a term to the wrong variant.
	ErrType = errors.New("type_error")

	// ErrBadarith is raised by arithmetic on non-numbers, divide-by-zero,
	// or float overflow to infinity.
	ErrBadarith = errors.New("badarith")

	// ErrBadarg is raised by a domain violation, such as a tuple index
	// outside 1..N.
	ErrBadarg = errors.New("badarg")

	// ErrInvariantViolation is raised when a header/arity mismatch or an
	// unaligned pointer is detected. Fatal: callers should abort the
	// process or the runtime rather than attempt recovery.
	ErrInvariantViolation = errors.New("invariant_violation")
)
