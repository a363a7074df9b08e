package layout

// This file defines the fixed-field shape of every boxed object kind other
// than Closure (which gets its own file because of its richer Definition
// sum type). Each function returns the generic *Layout from Calculate, so
// callers read offsets back via Layout.OffsetOf("field-name").

// TupleLayout lays out a Tuple: no fixed fields, a tail of n Terms.
func TupleLayout(width Width, arity uint64) (*Layout, error) {
	word := width.WordSize()
	return Calculate(width, nil, word, word, arity)
}

// ConsLayout lays out a Cons cell: head and tail Term fields, no variable
// tail.
func ConsLayout(width Width) (*Layout, error) {
	word := width.WordSize()
	return Calculate(width, []Field{
		{Name: "head", Size: word, Align: word},
		{Name: "tail_term", Size: word, Align: word},
	}, word, 0, 0)
}

// BinaryHeapLayout lays out a heap-resident Binary: a word-sized byte
// length field followed by the raw byte tail.
func BinaryHeapLayout(width Width, byteLen uint64) (*Layout, error) {
	word := width.WordSize()
	return Calculate(width, []Field{
		{Name: "length", Size: word, Align: word},
	}, 1, 1, byteLen)
}

// BinarySubLayout lays out a Binary sub-range: a reference to the original
// binary Term plus bit/byte offset and length bookkeeping, with no
// variable tail of its own — the referenced binary's bytes are shared, not
// copied (spec section 4.5).
func BinarySubLayout(width Width) (*Layout, error) {
	word := width.WordSize()
	return Calculate(width, []Field{
		{Name: "original", Size: word, Align: word},
		{Name: "bit_offset", Size: 4, Align: 4},
		{Name: "byte_len", Size: word, Align: word},
		{Name: "bit_len", Size: 4, Align: 4},
		{Name: "byte_offset", Size: word, Align: word},
	}, word, 0, 0)
}

// BignumDigitSize is the size, in bytes, of one base-2^k digit. Digits are
// stored as 32-bit limbs regardless of target pointer width, matching the
// width-independent digit representation math/big itself uses internally.
const BignumDigitSize = 4

// BignumLayout lays out a Bignum: sign and digit-count fields, followed by
// digitCount digits.
func BignumLayout(width Width, digitCount uint64) (*Layout, error) {
	return Calculate(width, []Field{
		{Name: "sign", Size: 1, Align: 1},
		{Name: "digit_count", Size: 4, Align: 4},
	}, 4, BignumDigitSize, digitCount)
}

// MapLayout lays out a Map: a size field followed by size key/value Term
// pairs.
func MapLayout(width Width, size uint64) (*Layout, error) {
	word := width.WordSize()
	return Calculate(width, []Field{
		{Name: "size", Size: word, Align: word},
	}, word, 2*word, size)
}

// FloatLayout lays out a boxed Float: one IEEE-754 double, no variable
// tail. Floats are not listed among spec section 3's boxed-object table,
// but the BIF-visible behavior spec section 8 requires (is_float_1,
// binary_to_float_1, mixed numeric comparison) is unimplementable without
// a float term kind, so it is supplemented here, boxed exactly as real
// BEAM floats are (a double does not fit alongside tag bits in a portable
// immediate encoding).
func FloatLayout(width Width) (*Layout, error) {
	return Calculate(width, []Field{
		{Name: "value", Size: 8, Align: 8},
	}, 8, 0, 0)
}

// ReferenceLayout lays out a (full, potentially distributed) Reference:
// node id, creation, and a 64-bit counter, no variable tail.
func ReferenceLayout(width Width) (*Layout, error) {
	return Calculate(width, []Field{
		{Name: "node_id", Size: 4, Align: 4},
		{Name: "creation", Size: 4, Align: 4},
		{Name: "counter", Size: 8, Align: 8},
	}, 8, 0, 0)
}
