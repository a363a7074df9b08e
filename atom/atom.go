// Package atom implements the process-wide atom table: interned symbolic
// identifiers with a stable, monotonically-assigned integer id (spec
// section 5). Atom identity is stable for the lifetime of the runtime —
// the table is read-mostly and only ever grows.
package atom

import "sync"

// Atom is an interned identifier. Ids are assigned from 0 in interning
// order, so the zero value names the first atom ever interned; always
// obtain atoms from Intern.
type Atom uint32

var table = newTable()

type internTable struct {
	mu     sync.RWMutex
	byName map[string]Atom
	byAtom []string
	nextID Atom
}

func newTable() *internTable {
	return &internTable{
		byName: make(map[string]Atom),
		byAtom: make([]string, 0, 64),
	}
}

// Intern returns the Atom for name, creating a new table entry the first
// time name is seen. Safe for concurrent use: lookups take a read lock,
// and only the first interning of a given name takes a write lock.
func Intern(name string) Atom {
	table.mu.RLock()
	if a, ok := table.byName[name]; ok {
		table.mu.RUnlock()
		return a
	}
	table.mu.RUnlock()

	table.mu.Lock()
	defer table.mu.Unlock()

	// Re-check: another goroutine may have interned name while we waited
	// for the write lock.
	if a, ok := table.byName[name]; ok {
		return a
	}

	a := table.nextID
	table.nextID++
	table.byName[name] = a
	table.byAtom = append(table.byAtom, name)
	return a
}

// String returns the name an Atom was interned with. Panics if a was never
// returned by Intern — an invariant violation, not a recoverable error,
// since atom ids are never synthesized by callers.
func (a Atom) String() string {
	table.mu.RLock()
	defer table.mu.RUnlock()
	if int(a) >= len(table.byAtom) {
		panic("atom: unknown atom id; atoms must only be constructed via Intern")
	}
	return table.byAtom[a]
}

// Count returns the number of atoms interned so far. Exposed for tests and
// diagnostics only.
func Count() int {
	table.mu.RLock()
	defer table.mu.RUnlock()
	return len(table.byAtom)
}
