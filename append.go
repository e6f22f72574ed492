package typehash

import (
	"iter"

	"github.com/hupe1980/typehash/internal/rawbytes"
)

// Append feeds h one trivially comparable scalar as a single span covering
// the value's entire storage.
func Append[T Trivial](h Consumer, v T) {
	h.Consume(rawbytes.Of(&v))
}

// AppendFloat feeds h one floating-point value as a single span, after
// collapsing signed zero: +0.0 and -0.0 compare equal, so both are
// rewritten to the canonical +0 bit pattern first. The rewrite happens on
// the local copy; the caller's value is never touched.
func AppendFloat[T Float](h Consumer, v T) {
	if v == 0 {
		v = 0
	}
	h.Consume(rawbytes.Of(&v))
}

// AppendSlice feeds h the whole backing run of s as a single span.
//
// This is the fast path for contiguous runs of trivially comparable
// elements: slice storage has no padding between same-type elements, so the
// run's bytes equal the concatenation of every element's own span in index
// order. Element types outside [Trivial] must never take this path; use
// [AppendFloats], [AppendSeq], or [AppendEach] instead.
func AppendSlice[T Trivial](h Consumer, s []T) {
	h.Consume(rawbytes.Slice(s))
}

// AppendString feeds h the bytes of s as a single span.
func AppendString(h Consumer, s string) {
	h.Consume(rawbytes.String(s))
}

// AppendFloats decomposes s element by element in index order through
// [AppendFloat]. Floats are decomposable but not trivially comparable, so
// the whole-run fast path would leak the representation difference between
// +0.0 and -0.0; each element is normalized individually instead.
func AppendFloats[T Float](h Consumer, s []T) {
	for _, v := range s {
		AppendFloat(h, v)
	}
}

// AppendSeq decomposes every element produced by seq, in strict forward
// order. The sequence must be finite; termination is the caller's
// responsibility.
//
// For a slice of Appender elements, combine with [slices.Values]:
//
//	typehash.AppendSeq(h, slices.Values(points))
func AppendSeq[T Appender](h Consumer, seq iter.Seq[T]) {
	for v := range seq {
		v.HashAppend(h)
	}
}

// AppendEach decomposes s element by element in index order using an
// explicit element rule. Use it when the element type has an entry point in
// the Append family but does not implement [Appender], e.g. a slice of
// strings or a slice of float slices:
//
//	typehash.AppendEach(h, names, typehash.AppendString)
//	typehash.AppendEach(h, rows, typehash.AppendFloats[float64])
func AppendEach[T any](h Consumer, s []T, each func(Consumer, T)) {
	for _, v := range s {
		each(h, v)
	}
}

// AppendAll decomposes parts left to right. This is the tuple form of the
// protocol: an aggregate's fields decompose in declared order, never in
// hash order and never in parallel.
func AppendAll(h Consumer, parts ...Appender) {
	for _, p := range parts {
		p.HashAppend(h)
	}
}
