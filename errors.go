package beamterm

import (
	"errors"

	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

// The error-kind taxonomy from spec section 7, re-exported so BIF
// implementations depend on this package alone. AllocError is heap's
// ErrOutOfMemory under the name spec section 7 gives it; the other four
// are term's sentinels unchanged.
var (
	ErrAlloc              = heap.ErrOutOfMemory
	ErrType               = term.ErrType
	ErrBadarith           = term.ErrBadarith
	ErrBadarg             = term.ErrBadarg
	ErrInvariantViolation = term.ErrInvariantViolation
)

// Is is errors.Is, re-exported so callers classifying a core error do not
// need their own "errors" import purely for that one call.
func Is(err, target error) bool { return errors.Is(err, target) }
