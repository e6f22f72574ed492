// Package rawbytes exposes the raw in-memory representation of values as
// byte slices. All unsafe code in the module lives here.
//
// Every view returned by this package aliases the argument's storage: it is
// valid only while the argument is alive, must never be mutated, and must
// never be retained past the call that produced it. The decomposition layer
// upholds this by handing views straight to a Consumer, which is itself
// forbidden from retaining them.
package rawbytes

import "unsafe"

// Of returns the storage of *v as a byte slice covering the object's entire
// representation, length unsafe.Sizeof(*v).
func Of[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))
}

// Slice returns the backing run of s as a single byte slice. Slice storage
// is contiguous with no padding between same-type elements, so the result
// is byte-for-byte the concatenation of Of over every element in index
// order. Returns nil for an empty slice.
func Slice[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// String returns the bytes of s without copying. Returns nil for the empty
// string.
func String(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Addr returns the address held by p as an integer.
func Addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
