package hashers

import (
	"hash"

	"github.com/hupe1980/typehash"
)

// Hash64 lifts any streaming [hash.Hash64] into an Algorithm with a uint64
// result. The digest's Write never returns an error by contract; it is
// discarded explicitly.
func Hash64(h hash.Hash64) typehash.Algorithm[uint64] {
	return hash64{h}
}

type hash64 struct {
	h hash.Hash64
}

var _ typehash.Algorithm[uint64] = hash64{}

func (a hash64) Consume(b []byte) { _, _ = a.h.Write(b) }
func (a hash64) Value() uint64    { return a.h.Sum64() }

// Hash32 lifts any streaming [hash.Hash32] into an Algorithm with a uint32
// result.
func Hash32(h hash.Hash32) typehash.Algorithm[uint32] {
	return hash32{h}
}

type hash32 struct {
	h hash.Hash32
}

var _ typehash.Algorithm[uint32] = hash32{}

func (a hash32) Consume(b []byte) { _, _ = a.h.Write(b) }
func (a hash32) Value() uint32    { return a.h.Sum32() }

// Stream lifts any [hash.Hash] into an Algorithm whose result is the
// digest's sum bytes. Value allocates a fresh sum slice per call.
func Stream(h hash.Hash) typehash.Algorithm[[]byte] {
	return stream{h}
}

type stream struct {
	h hash.Hash
}

var _ typehash.Algorithm[[]byte] = stream{}

func (a stream) Consume(b []byte) { _, _ = a.h.Write(b) }
func (a stream) Value() []byte    { return a.h.Sum(nil) }
