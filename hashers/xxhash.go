package hashers

import (
	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/typehash"
)

// NewXXHash64 returns a fresh xxHash64 backend with seed 0. xxHash64 is a
// fast non-cryptographic hash; a good default for hash tables and caches.
func NewXXHash64() typehash.Algorithm[uint64] {
	return Hash64(xxhash.New())
}

// NewXXHash64Seeded returns a constructor for xxHash64 backends with the
// given seed, suitable for [typehash.NewHasher]:
//
//	h := typehash.NewHasher(hashers.NewXXHash64Seeded(seed))
func NewXXHash64Seeded(seed uint64) func() typehash.Algorithm[uint64] {
	return func() typehash.Algorithm[uint64] {
		return Hash64(xxhash.NewWithSeed(seed))
	}
}
