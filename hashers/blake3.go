package hashers

import (
	"github.com/zeebo/blake3"

	"github.com/hupe1980/typehash"
)

// blake3Alg wraps the streaming BLAKE3 hasher with a fixed 32-byte result,
// so digests are comparable values rather than slices.
type blake3Alg struct {
	h *blake3.Hasher
}

var _ typehash.Algorithm[[32]byte] = blake3Alg{}

// NewBlake3 returns a fresh BLAKE3 backend producing a 32-byte digest.
// BLAKE3 is cryptographic; use it when decomposition output feeds
// content-addressing or integrity checks rather than hash tables.
func NewBlake3() typehash.Algorithm[[32]byte] {
	return blake3Alg{h: blake3.New()}
}

func (a blake3Alg) Consume(b []byte) { _, _ = a.h.Write(b) }

func (a blake3Alg) Value() [32]byte {
	var sum [32]byte
	copy(sum[:], a.h.Sum(nil))
	return sum
}
