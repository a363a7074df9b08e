// Package beamterm is the facade over the term representation and heap
// allocator core: the tagged-term encoding (package term), the boxed
// object family (package boxed), process-local heaps (package heap), and
// byte-exact layout calculation (package layout).
//
// Only this package imports both term and boxed, so it is the one place
// with enough type knowledge to implement cross-kind ordering, equality,
// and hashing (ordering.go); everything else in the module sees boxed
// objects only through the term.Boxed interface.
package beamterm
