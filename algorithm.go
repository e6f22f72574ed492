package typehash

// Consumer is the byte-consumption half of a hash algorithm.
//
// Consume folds the contribution of b into the algorithm's internal state.
// It must accept every span, including an empty or nil one, and never fails.
// Implementations must not retain b past the call: spans may alias the
// hashed value's live storage and are only valid for the duration of the
// call.
type Consumer interface {
	Consume(b []byte)
}

// Algorithm is a pluggable hash backend with result type R.
//
// An instance accumulates state across every span fed to it, in the order
// the decomposition layer presents them. Its lifetime is one hashing
// operation: reusing an instance across operations whose results must be
// independent gives accumulated, not independent, results. [Hasher] gets
// this right by constructing a fresh instance per call.
//
// Concrete backends live in the hashers sub-library; anything that can
// consume byte spans and report a value qualifies.
type Algorithm[R any] interface {
	Consumer

	// Value returns the result accumulated so far. Calling it before the
	// decomposition is complete yields a well-defined partial result, not
	// an error.
	Value() R
}
