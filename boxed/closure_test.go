package boxed

import (
	"crypto/md5"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/beamterm/atom"
	"github.com/scigolib/beamterm/heap"
	"github.com/scigolib/beamterm/term"
)

func TestClosure_ExportRoundTrip(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	def := NewExportDefinition(atom.Intern("double"))
	c, err := NewClosureFromSlice(arena, atom.Intern("math"), def, 1, nil, nil)
	require.NoError(t, err)

	require.Equal(t, atom.Intern("math"), c.Module())
	require.Equal(t, uint32(1), c.Arity())
	require.Equal(t, DefinitionExport, c.DefinitionOf().Kind)
	require.Equal(t, atom.Intern("double"), c.DefinitionOf().FunctionAtom())
	require.Equal(t, term.KindClosure, c.Header().Kind())
	require.Zero(t, c.EnvLen())
}

func TestClosure_AnonymousFunctionAtom(t *testing.T) {
	def := NewAnonymousDefinition(3, [16]byte{0xAB}, 7)
	require.Equal(t, "3-7-ab000000000000000000000000000000", def.FunctionAtom().String())
}

func TestClosure_AnonymousFromSourceDerivesUniqueViaMD5(t *testing.T) {
	body := []byte("fun(X) -> X + 1 end")
	def := NewAnonymousDefinitionFromSource(5, body, 42)

	require.Equal(t, md5.Sum(body), def.Unique)
	require.Equal(t, DefinitionAnonymous, def.Kind)
	require.Equal(t, uint32(5), def.Index)
	require.Equal(t, uint32(42), def.OldUnique)
}

func TestClosure_EnvCapturedAndCloned(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	inner, err := NewTupleFromSlice(arena, []term.Term{term.SmallInt(1)})
	require.NoError(t, err)
	env := []term.Term{term.SmallInt(42), term.FromBoxed(inner, false)}

	def := NewAnonymousDefinition(0, [16]byte{}, 0)
	c, err := NewClosureFromSlice(arena, atom.Intern("mod"), def, 0, nil, env)
	require.NoError(t, err)

	require.Len(t, c.Env(), 2)
	innerClone, ok := c.Env()[1].Boxed()
	require.True(t, ok)
	require.NotSame(t, inner, innerClone)
}

func TestClosure_FrameWithArguments(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	def := NewExportDefinition(atom.Intern("f"))

	noEnv, err := NewClosureFromSlice(arena, atom.Intern("m"), def, 0, nil, nil)
	require.NoError(t, err)
	self := term.FromBoxed(noEnv, false)
	require.Equal(t, []term.Term{term.SmallInt(1)}, noEnv.FrameWithArguments(self, []term.Term{term.SmallInt(1)}))

	withEnv, err := NewClosureFromSlice(arena, atom.Intern("m"), def, 0, nil, []term.Term{term.SmallInt(9)})
	require.NoError(t, err)
	selfWithEnv := term.FromBoxed(withEnv, false)
	frame := withEnv.FrameWithArguments(selfWithEnv, []term.Term{term.SmallInt(1)})
	require.Len(t, frame, 2)
}

func TestClosure_CallNative(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	def := NewExportDefinition(atom.Intern("identity"))
	native := func(args []term.Term) (term.Term, error) { return args[0], nil }
	c, err := NewClosureFromSlice(arena, atom.Intern("m"), def, 1, native, nil)
	require.NoError(t, err)

	self := term.FromBoxed(c, false)
	result, err := c.CallNative(self, []term.Term{term.SmallInt(5)})
	require.NoError(t, err)
	v, ok := result.SmallInteger()
	require.True(t, ok)
	require.EqualValues(t, 5, v)
}

func TestClosure_CallNative_PanicsWithoutNativeEntry(t *testing.T) {
	arena := NewArena(heap.NewBumpHeap(NativeWidth))
	def := NewExportDefinition(atom.Intern("m"))
	c, err := NewClosureFromSlice(arena, atom.Intern("m"), def, 0, nil, nil)
	require.NoError(t, err)
	self := term.FromBoxed(c, false)
	require.Panics(t, func() { _, _ = c.CallNative(self, nil) })
}

func TestClosure_CompareExportBeatsAnonymous(t *testing.T) {
	expDef := NewExportDefinition(atom.Intern("x"))
	anonDef := NewAnonymousDefinition(0, [16]byte{}, 0)
	require.Equal(t, 1, expDef.compare(anonDef))
	require.Equal(t, -1, anonDef.compare(expDef))
}

func TestClosure_NewUninitializedClosureSetEnv(t *testing.T) {
	h := heap.NewBumpHeap(NativeWidth)
	def := NewExportDefinition(atom.Intern("g"))
	c, err := NewUninitializedClosure(h, atom.Intern("m"), def, 2, nil, 2)
	require.NoError(t, err)
	c.SetEnv(0, term.SmallInt(1))
	c.SetEnv(1, term.SmallInt(2))
	v0, _ := c.Env()[0].SmallInteger()
	v1, _ := c.Env()[1].SmallInteger()
	require.EqualValues(t, 1, v0)
	require.EqualValues(t, 2, v1)
}
