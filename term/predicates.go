package term

// Predicates used by BIFs and generated code to classify a term without
// knowing its concrete boxed type — only the tag bits and, for boxed
// terms, the Header's Kind (spec section 4.2, section 6).

// IsNumber reports whether t is a small integer, a bignum, or a float.
func (t Term) IsNumber() bool {
	if _, ok := t.SmallInteger(); ok {
		return true
	}
	k, ok := t.Header()
	return ok && (k.Kind() == KindBignum || k.Kind() == KindFloat)
}

// IsInteger reports whether t is a small integer or a bignum.
func (t Term) IsInteger() bool {
	if _, ok := t.SmallInteger(); ok {
		return true
	}
	k, ok := t.Header()
	return ok && k.Kind() == KindBignum
}

// IsFloat reports whether t is a boxed float.
func (t Term) IsFloat() bool {
	k, ok := t.Header()
	return ok && k.Kind() == KindFloat
}

// IsAtom reports whether t is an atom.
func (t Term) IsAtom() bool {
	return t.ImmediateKind() == ImmediateAtom
}

// IsPid reports whether t is a local pid.
func (t Term) IsPid() bool {
	return t.ImmediateKind() == ImmediatePid
}

// IsPort reports whether t is a local port.
func (t Term) IsPort() bool {
	return t.ImmediateKind() == ImmediatePort
}

// IsReference reports whether t is a boxed reference.
func (t Term) IsReference() bool {
	k, ok := t.Header()
	return ok && k.Kind() == KindReference
}

// IsFun reports whether t is a boxed closure.
func (t Term) IsFun() bool {
	k, ok := t.Header()
	return ok && k.Kind() == KindClosure
}

// IsTuple reports whether t is a boxed tuple.
func (t Term) IsTuple() bool {
	k, ok := t.Header()
	return ok && k.Kind() == KindTuple
}

// IsMap reports whether t is a boxed map.
func (t Term) IsMap() bool {
	k, ok := t.Header()
	return ok && k.Kind() == KindMap
}

// IsList reports whether t is nil (the empty list) or a cons cell.
func (t Term) IsList() bool {
	if t.IsNil() {
		return true
	}
	k, ok := t.Header()
	return ok && k.Kind() == KindCons
}

// IsBinary reports whether t is a heap binary or a sub-binary. Only the
// Header's Kind is consulted, not the sub-binary's bit length, so a
// sub-binary whose length is not a whole number of bytes also counts.
func (t Term) IsBinary() bool {
	k, ok := t.Header()
	if !ok {
		return false
	}
	return k.Kind() == KindBinaryHeap || k.Kind() == KindBinarySub
}

// IsBitstring reports whether t is any binary, including one whose bit
// length is not a whole number of bytes. Every binary is a bitstring, so
// IsBitstring subsumes IsBinary; callers that need the "whole bytes"
// distinction must inspect the sub-binary's SubBitLen themselves
// (package boxed).
func (t Term) IsBitstring() bool {
	return t.IsBinary()
}

// Complement predicates, provided because generated code branches on both
// forms equally often (spec section 6).
func (t Term) IsNotNumber() bool    { return !t.IsNumber() }
func (t Term) IsNotInteger() bool   { return !t.IsInteger() }
func (t Term) IsNotFloat() bool     { return !t.IsFloat() }
func (t Term) IsNotAtom() bool      { return !t.IsAtom() }
func (t Term) IsNotPid() bool       { return !t.IsPid() }
func (t Term) IsNotPort() bool      { return !t.IsPort() }
func (t Term) IsNotReference() bool { return !t.IsReference() }
func (t Term) IsNotFun() bool       { return !t.IsFun() }
func (t Term) IsNotTuple() bool     { return !t.IsTuple() }
func (t Term) IsNotMap() bool       { return !t.IsMap() }
func (t Term) IsNotList() bool      { return !t.IsList() }
func (t Term) IsNotBinary() bool    { return !t.IsBinary() }
func (t Term) IsNotBitstring() bool { return !t.IsBitstring() }
