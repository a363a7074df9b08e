package beamterm

import (
	"fmt"

	"github.com/scigolib/beamterm/boxed"
	"github.com/scigolib/beamterm/term"
)

// asTuple projects t as a boxed Tuple, or term.ErrType if it is not one.
func asTuple(t Term) (*boxed.Tuple, error) {
	b, ok := t.Boxed()
	if !ok {
		return nil, fmt.Errorf("expected a tuple: %w", term.ErrType)
	}
	tup, ok := b.(*boxed.Tuple)
	if !ok {
		return nil, fmt.Errorf("expected a tuple, got a %s: %w", b.Header().Kind(), term.ErrType)
	}
	return tup, nil
}

// DeleteElement2 implements `delete_element/2` (spec section 8, scenario
// 3): removes the 1-based index from t, returning a new tuple term.
// index outside 1..arity(t) raises Badarg.
func DeleteElement2(a TermAlloc, t Term, index int) (Term, error) {
	tup, err := asTuple(t)
	if err != nil {
		return Term{}, err
	}
	remaining, err := tup.DeleteElement(index)
	if err != nil {
		return Term{}, err
	}
	return NewTuple(a, remaining)
}

// TupleToList1 implements `tuple_to_list/1` (spec section 8, scenario 4):
// converts a tuple's elements into a proper list in order.
func TupleToList1(a TermAlloc, t Term) (Term, error) {
	tup, err := asTuple(t)
	if err != nil {
		return Term{}, err
	}
	return boxed.ListFromSlice(a, tup.Elements())
}

// TupleSize1 implements `tuple_size/1`.
func TupleSize1(t Term) (int, error) {
	tup, err := asTuple(t)
	if err != nil {
		return 0, err
	}
	return tup.Arity(), nil
}
