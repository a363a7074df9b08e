package atom

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntern_SameNameReturnsSameAtom(t *testing.T) {
	a := Intern("beamterm_test_same_name")
	b := Intern("beamterm_test_same_name")
	require.Equal(t, a, b)
}

func TestIntern_DifferentNamesReturnDifferentAtoms(t *testing.T) {
	a := Intern("beamterm_test_alpha")
	b := Intern("beamterm_test_beta")
	require.NotEqual(t, a, b)
}

func TestAtom_StringRoundTrips(t *testing.T) {
	a := Intern("beamterm_test_roundtrip")
	require.Equal(t, "beamterm_test_roundtrip", a.String())
}

func TestAtom_StringPanicsOnUnknownID(t *testing.T) {
	require.Panics(t, func() {
		_ = Atom(1 << 20).String()
	})
}

func TestIntern_ConcurrentInternOfSameNameIsStable(t *testing.T) {
	const goroutines = 50
	results := make([]Atom, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = Intern("beamterm_test_concurrent")
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Equal(t, results[0], results[i])
	}
}
