package hashers

import (
	"go.dw1.io/x/hash/wyhash"

	"github.com/hupe1980/typehash"
)

// NewWyhash64 returns a fresh 64-bit wyhash backend with seed 0.
func NewWyhash64() typehash.Algorithm[uint64] {
	return Hash64(wyhash.New64())
}

// NewWyhash64Seeded returns a constructor for seeded 64-bit wyhash
// backends, suitable for [typehash.NewHasher].
func NewWyhash64Seeded(seed uint64) func() typehash.Algorithm[uint64] {
	return func() typehash.Algorithm[uint64] {
		return Hash64(wyhash.New64WithSeed(seed))
	}
}
