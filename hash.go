package typehash

// Hasher is the universal hash function: it pairs an algorithm constructor
// with one decomposition pass per call.
//
// Every call to Hash constructs a fresh [Algorithm] instance, so results
// are independent across calls. Hasher itself is stateless and safe for
// concurrent use as long as the constructor is.
type Hasher[R any] struct {
	newAlg func() Algorithm[R]
}

// NewHasher returns a Hasher backed by newAlg. The constructors in the
// hashers sub-library plug in directly:
//
//	h := typehash.NewHasher(hashers.NewXXHash64)
func NewHasher[R any](newAlg func() Algorithm[R]) Hasher[R] {
	return Hasher[R]{newAlg: newAlg}
}

// Hash decomposes v against a fresh algorithm instance and returns the
// instance's value. The instance is discarded afterwards.
func (h Hasher[R]) Hash(v Appender) R {
	alg := h.newAlg()
	v.HashAppend(alg)
	return alg.Value()
}

// Hash is the one-shot form of [Hasher.Hash]:
//
//	sum := typehash.Hash(hashers.NewXXHash64, typehash.StringValue("hello"))
func Hash[R any](newAlg func() Algorithm[R], v Appender) R {
	alg := newAlg()
	v.HashAppend(alg)
	return alg.Value()
}
