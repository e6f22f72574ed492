package typehash

// Appender is implemented by types that know how to decompose themselves
// into byte spans for hashing.
//
// HashAppend must feed h the type's hash-relevant fields in declared order,
// using the Append family or the fields' own HashAppend methods. It must be
// a pure function of the value's logical content: two values the type
// considers equal must produce identical span sequences.
type Appender interface {
	HashAppend(h Consumer)
}

// Func adapts an ordinary function to the Appender interface.
type Func func(h Consumer)

// HashAppend calls f.
func (f Func) HashAppend(h Consumer) { f(h) }

// Value returns an Appender for a single trivially comparable scalar.
func Value[T Trivial](v T) Appender {
	return Func(func(h Consumer) { Append(h, v) })
}

// FloatValue returns an Appender for a single floating-point value, with
// signed zero collapsed as in [AppendFloat].
func FloatValue[T Float](v T) Appender {
	return Func(func(h Consumer) { AppendFloat(h, v) })
}

// StringValue returns an Appender for a string.
func StringValue(s string) Appender {
	return Func(func(h Consumer) { AppendString(h, s) })
}

// SliceValue returns an Appender for a slice of trivially comparable
// elements, decomposed through the [AppendSlice] fast path.
//
// The Appender holds the slice, not a copy; mutating the slice before the
// hash runs changes the result.
func SliceValue[T Trivial](s []T) Appender {
	return Func(func(h Consumer) { AppendSlice(h, s) })
}

// Tuple returns an Appender that decomposes parts left to right, as
// [AppendAll] does.
func Tuple(parts ...Appender) Appender {
	return Func(func(h Consumer) { AppendAll(h, parts...) })
}
