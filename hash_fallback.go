//go:build !(amd64 && cgo)

package beamterm

import "hash/fnv"

// hashBytes falls back to stdlib FNV-1a on targets where the Meow hash's
// cgo/amd64 build constraint (see hash_meow.go) isn't satisfiable. No
// library in the pack offers a pure-Go hash with no build constraints, so
// this one fallback is stdlib rather than grounded on a pack dependency —
// see DESIGN.md.
func hashBytes(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
