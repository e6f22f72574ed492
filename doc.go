// Package typehash computes deterministic hash values of arbitrary composite
// data using a pluggable hash backend.
//
// Typehash implements the "types don't know #" pattern: a type describes how
// its hash-relevant state decomposes into a sequence of byte spans, and an
// [Algorithm] only consumes bytes and produces a result. Neither side knows
// anything about the other, so any backend works with any decomposable type.
//
// # Quick Start
//
// One-shot hashing with a backend from the hashers sub-library:
//
//	sum := typehash.Hash(hashers.NewXXHash64, typehash.StringValue("hello"))
//
// Or bind a backend once and reuse it:
//
//	h := typehash.NewHasher(hashers.NewXXHash64)
//	a := h.Hash(typehash.StringValue("hello"))
//	b := h.Hash(typehash.Value(int64(42)))
//
// Every Hash call constructs a fresh algorithm instance, so results are
// independent across calls.
//
// # Decomposing Your Own Types
//
// Implement [Appender] and feed fields in declared order using the Append
// family:
//
//	type Point struct {
//	    X, Y int32
//	    Tag  string
//	}
//
//	func (p Point) HashAppend(h typehash.Consumer) {
//	    typehash.Append(h, p.X)
//	    typehash.Append(h, p.Y)
//	    typehash.AppendString(h, p.Tag)
//	}
//
// Decomposition must be a pure function of the value's logical content:
// two values your type considers equal must produce identical span
// sequences. The Append family upholds this for the built-in shapes; in
// particular [AppendFloat] collapses signed zero so +0.0 and -0.0 hash
// identically.
//
// # Dispatch
//
// Each supported value shape has its own generic entry point, and the most
// specific one is chosen at compile time by the type checker. There is no
// reflection and no runtime registry: a value with no applicable entry point
// and no [Appender] implementation is a compile error naming the offending
// type, never a runtime failure.
//
//	Append        trivially comparable scalars (integers, bool)
//	AppendFloat   floating point, signed zero collapsed
//	AppendPointer pointers, hashed as opaque addresses
//	AppendRaw     author-asserted padding-free aggregates
//	AppendSlice   slices of trivially comparable elements (single span)
//	AppendString  strings (single span)
//	AppendFloats  slices of floats, element-wise
//	AppendSeq     iterator ranges of Appender elements
//	AppendEach    slices with an explicit element rule
//	AppendAll     heterogeneous tuples, left to right
//
// # Concurrency
//
// Decomposition is a synchronous depth-first traversal with no suspension
// points. An algorithm instance belongs to exactly one hashing operation;
// concurrent hashing of independent values uses independent instances, which
// is what [Hasher.Hash] does naturally.
package typehash
