package boxed

import (
	"crypto/md5"
	"fmt"

	"github.com/scigolib/beamterm/atom"
	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/internal/utils"
	"github.com/scigolib/beamterm/layout"
	"github.com/scigolib/beamterm/term"
)

// DefinitionKind distinguishes a closure's two Definition cases (spec
// section 3). Export sorts greater than every Anonymous instance,
// regardless of any other field — captured externals sort after funs.
type DefinitionKind uint8

const (
	DefinitionAnonymous DefinitionKind = iota
	DefinitionExport
)

// Definition is the closure Definition sum type: either an Export
// (captured Module:Function/Arity — module and arity live on the
// enclosing Closure, so only the function atom is carried here) or an
// Anonymous fun identified by index, a 16-byte MD5 unique, and a 32-bit
// old_unique hash.
type Definition struct {
	Kind DefinitionKind

	// Export fields.
	Function atom.Atom

	// Anonymous fields.
	Index     uint32
	Unique    [16]byte
	OldUnique uint32
}

// NewExportDefinition builds a Definition capturing a named export.
func NewExportDefinition(function atom.Atom) Definition {
	return Definition{Kind: DefinitionExport, Function: function}
}

// NewAnonymousDefinition builds a Definition for a fun literal from an
// already-computed unique digest (e.g. one decoded off the external term
// format, where the digest travels with the term rather than its source).
func NewAnonymousDefinition(index uint32, unique [16]byte, oldUnique uint32) Definition {
	return Definition{Kind: DefinitionAnonymous, Index: index, Unique: unique, OldUnique: oldUnique}
}

// NewAnonymousDefinitionFromSource builds a Definition for a fun literal by
// deriving its unique field from significantBytes: the BEAM-equivalent
// significant bytes of the fun's body (spec section 3 names this digest as
// "16-byte MD5 of the BEAM-equivalent significant bytes" explicitly, so the
// derivation uses MD5 rather than a general-purpose hash). Callers compiling
// a fun literal from source use this; callers rehydrating one whose digest
// already exists use NewAnonymousDefinition directly.
func NewAnonymousDefinitionFromSource(index uint32, significantBytes []byte, oldUnique uint32) Definition {
	return NewAnonymousDefinition(index, md5.Sum(significantBytes), oldUnique)
}

// FunctionAtom returns the atom identifying this definition: the captured
// function atom for an Export, or a synthesized "{index}-{old_unique}-{hex
// unique}" atom for an Anonymous fun (spec section 3).
func (d Definition) FunctionAtom() atom.Atom {
	if d.Kind == DefinitionExport {
		return d.Function
	}
	name := fmt.Sprintf("%d-%d-%x", d.Index, d.OldUnique, d.Unique)
	return atom.Intern(name)
}

// compare orders d against other: Export > Anonymous unconditionally, then
// structurally within a kind (spec section 3, section 8 property 8).
func (d Definition) compare(other Definition) int {
	if d.Kind != other.Kind {
		if d.Kind == DefinitionExport {
			return 1
		}
		return -1
	}
	if d.Kind == DefinitionExport {
		return int(d.Function) - int(other.Function)
	}
	if d.Index != other.Index {
		return int(d.Index) - int(other.Index)
	}
	if d.OldUnique != other.OldUnique {
		return int(d.OldUnique) - int(other.OldUnique)
	}
	for i := range d.Unique {
		if d.Unique[i] != other.Unique[i] {
			return int(d.Unique[i]) - int(other.Unique[i])
		}
	}
	return 0
}

// NativeFunc is a closure's native entry point. A nil NativeFunc models
// the "native entry may be absent" case (spec section 4.4) — e.g. a
// closure that arrived over the external term format with no locally
// compiled code for its module.
type NativeFunc func(args []term.Term) (term.Term, error)

// Closure is the boxed representation of a fun: a captured or anonymous
// Definition plus its environment of free variables (spec section 3,
// section 4.4).
type Closure struct {
	module     atom.Atom
	arity      uint32
	definition Definition
	native     NativeFunc
	env        []term.Term
	size       int // container's own layout size in bytes, fixed by envLen at construction
}

// NewUninitializedClosure allocates a Closure with envLen environment
// slots left indeterminate, for callers assembling one field-by-field
// (e.g. from registers) rather than from an already-built slice. Callers
// must write every env slot via SetEnv before the closure is observed by
// anything else.
func NewUninitializedClosure(a heap.Heap, module atom.Atom, definition Definition, arity uint32, native NativeFunc, envLen int) (*Closure, error) {
	l, err := layout.ClosureLayoutFor(NativeWidth, uint64(envLen))
	if err != nil {
		return nil, utils.WrapError("boxed: closure layout", err)
	}
	if _, err := a.Reserve(l.Raw); err != nil {
		return nil, utils.WrapError("boxed: allocating closure", err)
	}
	return &Closure{
		module:     module,
		arity:      arity,
		definition: definition,
		native:     native,
		env:        make([]term.Term, envLen),
		size:       l.Raw.Size,
	}, nil
}

// NewClosureFromSlice allocates a Closure and copies env into it, cloning
// every non-immediate, non-literal element onto a so the closure shares no
// mutable sub-term with its source (spec section 4.4).
func NewClosureFromSlice(a heap.TermAlloc, module atom.Atom, definition Definition, arity uint32, native NativeFunc, env []term.Term) (*Closure, error) {
	c, err := NewUninitializedClosure(a, module, definition, arity, native, len(env))
	if err != nil {
		return nil, err
	}
	for i, t := range env {
		cloned, err := cloneTerm(a, t)
		if err != nil {
			return nil, fmt.Errorf("boxed: cloning closure environment slot %d: %w", i, err)
		}
		c.env[i] = cloned
	}
	return c, nil
}

// SetEnv writes slot i of a closure built with NewUninitializedClosure.
func (c *Closure) SetEnv(i int, t term.Term) {
	c.env[i] = t
}

// Module, Arity, DefinitionOf, Native, and Env are the closure's immutable
// field accessors (spec section 4.5).
func (c *Closure) Module() atom.Atom        { return c.module }
func (c *Closure) Arity() uint32            { return c.arity }
func (c *Closure) DefinitionOf() Definition { return c.definition }
func (c *Closure) Native() NativeFunc       { return c.native }
func (c *Closure) Env() []term.Term         { return c.env }
func (c *Closure) EnvLen() int              { return len(c.env) }

// Header implements term.Boxed. size was fixed by NewUninitializedClosure
// from the same envLen this closure was built with, so no recomputation
// (and no possibility of the layout call failing here) is needed.
func (c *Closure) Header() term.Header {
	return term.NewHeader(term.KindClosure, layout.ArityWords(NativeWidth, c.size))
}

// SizeWords implements term.Boxed: the container's own size in words plus
// the recursive size_in_words of every non-immediate, non-literal
// environment element (spec section 4.6).
func (c *Closure) SizeWords() uint64 {
	total := uint64(c.size) / uint64(NativeWidth.WordSize())
	for _, t := range c.env {
		total += subTermWords(t)
	}
	return total
}

// FrameWithArguments implements the native invocation contract (spec
// section 4.4): prepends the closure itself as argument 0 exactly when
// the environment is non-empty, so a native entry with a non-empty
// environment can recover its captured variables from argument 0.
func (c *Closure) FrameWithArguments(self term.Term, args []term.Term) []term.Term {
	if len(c.env) == 0 {
		return args
	}
	frame := make([]term.Term, 0, len(args)+1)
	frame = append(frame, self)
	frame = append(frame, args...)
	return frame
}

// CallNative invokes c's native entry with FrameWithArguments applied.
// Calling CallNative on an entry-less closure is a programming error —
// the caller is expected to check Native() != nil first (spec section
// 4.4's "fail fast").
func (c *Closure) CallNative(self term.Term, args []term.Term) (term.Term, error) {
	if c.native == nil {
		panic("boxed: CallNative on a closure with no native entry")
	}
	return c.native(c.FrameWithArguments(self, args))
}

func (c *Closure) cloneTo(dest heap.TermAlloc) (term.Term, error) {
	clone, err := NewClosureFromSlice(dest, c.module, c.definition, c.arity, c.native, c.env)
	if err != nil {
		return term.Term{}, err
	}
	return term.FromBoxed(clone, false), nil
}

// CompareClosure orders two closures per spec section 3: module, then
// arity, then definition, then native address (None < Some, per
// DESIGN.md's Open Question resolution), then environment element-wise.
// cmpTerm is supplied by the root facade package, which alone has the type
// knowledge to order arbitrary Term values; Closure cannot call it
// directly without an import cycle, so it is passed in.
func CompareClosure(a, b *Closure, cmpTerm func(x, y term.Term) int) int {
	if a.module != b.module {
		return int(a.module) - int(b.module)
	}
	if a.arity != b.arity {
		return int(a.arity) - int(b.arity)
	}
	if d := a.definition.compare(b.definition); d != 0 {
		return d
	}
	if d := compareNativeAddr(a.native, b.native); d != 0 {
		return d
	}
	for i := 0; i < len(a.env) && i < len(b.env); i++ {
		if d := cmpTerm(a.env[i], b.env[i]); d != 0 {
			return d
		}
	}
	return len(a.env) - len(b.env)
}
