//go:build amd64 && cgo

package beamterm

import (
	"encoding/binary"

	"github.com/quillaja/meow"
)

// hashBytes hashes data with the Meow non-cryptographic hash, folding its
// 128-bit digest down to the uint64 Hash's contract promises. Available
// only where Meow's AES-NI intrinsics are (amd64, built with cgo); see
// hash_fallback.go for every other target.
func hashBytes(data []byte) uint64 {
	digest := meow.Hash(data)
	return binary.LittleEndian.Uint64(digest[:8])
}
