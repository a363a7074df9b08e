package layout

// ClosureLayout names every field offset of a Closure boxed object at a
// given pointer width: header, module atom, numeric arity, definition, the
// nullable native-entry pointer, and the start of the environment tail
// (spec section 4.1).
type ClosureLayout struct {
	Width Width

	HeaderOffset     int
	ModuleOffset     int // atom, pointer-sized
	ArityOffset      int // uint32, fixed width regardless of target
	DefinitionOffset int
	DefinitionSize   int // sized for the target pointer width; see definitionSize
	NativeOffset     int // nullable pointer
	EnvOffset        int // start of the Term environment tail

	Size int // total byte size for the requested environment length

	// Raw is the underlying generic Layout Calculate produced, for callers
	// (package heap, package boxed) that only need Size/Alignment to
	// charge a heap's accounting and do not care about individual field
	// offsets.
	Raw *Layout
}

// definitionSize returns the byte size of the Definition sum type at this
// pointer width. Both cases share one tag byte; the payload is sized to the
// larger of the two variants — an Export's single pointer-sized atom, or an
// Anonymous fun's index (uint32) + unique (16-byte MD5) + old_unique
// (uint32) — then the whole thing is padded to the word boundary because
// atoms embedded in the sum type are pointer-sized and must stay aligned.
func definitionSize(width Width) int {
	const anonymousPayload = 4 + 16 + 4 // index + unique + old_unique
	word := width.WordSize()

	payload := word // Export: one pointer-sized atom
	if anonymousPayload > payload {
		payload = anonymousPayload
	}

	const tagSize = 1
	return alignUp(tagSize+payload, word)
}

// closureFields returns the fixed-field description of a Closure, excluding
// the header (Calculate prepends that) and the environment tail.
func closureFields(width Width) []Field {
	word := width.WordSize()
	defSize := definitionSize(width)

	return []Field{
		{Name: "module", Size: word, Align: word},
		{Name: "arity", Size: 4, Align: 4},
		{Name: "definition", Size: defSize, Align: word},
		{Name: "native", Size: word, Align: word},
	}
}

// ClosureLayoutFor computes the layout of a Closure with envLen Term-sized
// environment slots at the given pointer width.
func ClosureLayoutFor(width Width, envLen uint64) (*ClosureLayout, error) {
	word := width.WordSize()
	fields := closureFields(width)

	l, err := Calculate(width, fields, word, word, envLen)
	if err != nil {
		return nil, err
	}

	header, _ := l.OffsetOf("header")
	module, _ := l.OffsetOf("module")
	arity, _ := l.OffsetOf("arity")
	def, _ := l.OffsetOf("definition")
	native, _ := l.OffsetOf("native")
	env, _ := l.OffsetOf("tail")

	return &ClosureLayout{
		Width:            width,
		HeaderOffset:     header,
		ModuleOffset:     module,
		ArityOffset:      arity,
		DefinitionOffset: def,
		DefinitionSize:   definitionSize(width),
		NativeOffset:     native,
		EnvOffset:        env,
		Size:             l.Size,
		Raw:              l,
	}, nil
}

// ClosureLayout32 and ClosureLayout64 are the two pointer-width-specialized
// entry points spec section 4.1 requires, so cross-compilation and code
// generation can query a target's closure layout independent of the host's
// own pointer width.
func ClosureLayout32(envLen uint64) (*ClosureLayout, error) { return ClosureLayoutFor(Width32, envLen) }
func ClosureLayout64(envLen uint64) (*ClosureLayout, error) { return ClosureLayoutFor(Width64, envLen) }

// ClosureBaseSize returns the closure's layout size when envLen = 0: the
// base_size(width) spec section 4.1 asks for, used to recover env_len from
// a raw header's arity-in-words (base_size_words - 1 + n).
func ClosureBaseSize(width Width) int {
	return BaseSize(width, closureFields(width), width.WordSize(), width.WordSize())
}

// ClosureBaseSizeWords is ClosureBaseSize expressed in words rather than
// bytes — the base_size_words spec section 3's closure arity invariant is
// defined in terms of.
func ClosureBaseSizeWords(width Width) uint64 {
	return uint64(ClosureBaseSize(width)) / uint64(width.WordSize())
}
