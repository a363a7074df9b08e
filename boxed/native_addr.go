package boxed

import "reflect"

// compareNativeAddr orders two native entries by address: nil sorts
// before any present entry (spec section 9's Open Question — "native
// pointer None on both sides... None < Some(_)"), and two present entries
// are ordered by their underlying code pointer. reflect.ValueOf(fn).Pointer
// is the idiomatic way to recover a Go func value's entry address; it is
// stable for the lifetime of the process, which is all term ordering
// requires.
func compareNativeAddr(a, b NativeFunc) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	pa := reflect.ValueOf(a).Pointer()
	pb := reflect.ValueOf(b).Pointer()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}
