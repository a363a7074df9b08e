// Package utils provides shared helpers for the beamterm core: error
// wrapping, overflow-checked arithmetic, and a scratch buffer pool.
package utils

import "fmt"

// TermError represents a structured, contextual error raised by the term
// and heap layer.
type TermError struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *TermError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// WrapError creates a contextual error. Returns nil if cause is nil, so
// callers can write `return utils.WrapError("...", err)` unconditionally.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &TermError{
		Context: context,
		Cause:   cause,
	}
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *TermError) Unwrap() error {
	return e.Cause
}
