package hashers_test

import (
	"crypto/sha256"
	"hash/crc32"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"go.dw1.io/x/hash/wyhash"

	"github.com/hupe1980/typehash/hashers"
)

// consumeSpans feeds the canonical two-span input used by the adapter
// tests; all adapters must see it exactly as the one-shot "abcdef".
func consumeSpans(c interface{ Consume([]byte) }) {
	c.Consume([]byte("ab"))
	c.Consume(nil)
	c.Consume([]byte("cdef"))
}

func TestXXHash64(t *testing.T) {
	alg := hashers.NewXXHash64()
	consumeSpans(alg)
	assert.Equal(t, xxhash.Sum64([]byte("abcdef")), alg.Value())
}

func TestWyhash64(t *testing.T) {
	alg := hashers.NewWyhash64()
	consumeSpans(alg)

	ref := wyhash.New64()
	_, err := ref.Write([]byte("abcdef"))
	require.NoError(t, err)

	assert.Equal(t, ref.Sum64(), alg.Value())
}

func TestBlake3(t *testing.T) {
	alg := hashers.NewBlake3()
	consumeSpans(alg)
	assert.Equal(t, blake3.Sum256([]byte("abcdef")), alg.Value())
}

func TestCRC32C(t *testing.T) {
	alg := hashers.NewCRC32C()
	consumeSpans(alg)

	want := crc32.Checksum([]byte("abcdef"), crc32.MakeTable(crc32.Castagnoli))
	assert.Equal(t, want, alg.Value())
}

func TestStream(t *testing.T) {
	alg := hashers.Stream(sha256.New())
	consumeSpans(alg)

	want := sha256.Sum256([]byte("abcdef"))
	assert.Equal(t, want[:], alg.Value())
}

func TestSeededConstructors(t *testing.T) {
	t.Run("xxhash", func(t *testing.T) {
		a := hashers.NewXXHash64Seeded(1)()
		b := hashers.NewXXHash64Seeded(2)()
		consumeSpans(a)
		consumeSpans(b)
		assert.NotEqual(t, a.Value(), b.Value())
	})

	t.Run("wyhash", func(t *testing.T) {
		a := hashers.NewWyhash64Seeded(1)()
		b := hashers.NewWyhash64Seeded(2)()
		consumeSpans(a)
		consumeSpans(b)
		assert.NotEqual(t, a.Value(), b.Value())
	})

	t.Run("same seed agrees", func(t *testing.T) {
		a := hashers.NewWyhash64Seeded(7)()
		b := hashers.NewWyhash64Seeded(7)()
		consumeSpans(a)
		consumeSpans(b)
		assert.Equal(t, a.Value(), b.Value())
	})
}

func TestEmptyInput(t *testing.T) {
	// Value on a fresh instance is the backend's hash of zero bytes, not an
	// error: a partial (here: empty) hash is always well-defined.
	assert.Equal(t, xxhash.Sum64(nil), hashers.NewXXHash64().Value())

	alg := hashers.NewCRC32C()
	alg.Consume(nil)
	assert.Equal(t, uint32(0), alg.Value())
}
