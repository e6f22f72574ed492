package typehash

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/typehash/internal/rawbytes"
)

// Trivial constrains the trivially comparable scalar types: types whose
// values have exactly one bit pattern per distinct logical value, with no
// padding and no indirection. For these, the in-memory representation is
// itself the canonical hash input, so [Append] and [AppendSlice] can feed
// it to the backend as a single span.
//
// Floating-point types are excluded: +0.0 and -0.0 compare equal but have
// different bit patterns. Use [AppendFloat] for floats.
type Trivial interface {
	constraints.Integer | ~bool
}

// Float constrains the floating-point types accepted by [AppendFloat].
type Float = constraints.Float

// AppendPointer feeds h the pointer value itself as a single span, treating
// the address as an opaque scalar. The pointee is not visited; two pointers
// hash equal iff they refer to the same object. Use the pointee's own
// decomposition instead when logical content, not identity, should drive
// the hash.
func AppendPointer[T any](h Consumer, p *T) {
	addr := rawbytes.Addr(p)
	h.Consume(rawbytes.Of(&addr))
}

// AppendRaw feeds h the entire in-memory representation of *v as a single
// span. It is the author's assertion that T is trivially comparable: every
// byte of the representation participates in equality, with no padding and
// no pointers, slices, strings, maps, or other indirection anywhere in T.
//
// The assertion is not checked. A T containing padding or indirection
// silently breaks the equal-values-equal-bytes invariant: equal values hash
// differently (padding garbage) or unequal values hash equally (addresses
// instead of content). When in doubt, implement [Appender] field by field
// instead.
func AppendRaw[T any](h Consumer, v *T) {
	h.Consume(rawbytes.Of(v))
}
