package typehash_test

import (
	"testing"

	"github.com/hupe1980/typehash"
	"github.com/hupe1980/typehash/hashers"
)

func BenchmarkAppendSlice(b *testing.B) {
	data := make([]int64, 1024)
	for i := range data {
		data[i] = int64(i)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data) * 8))

	var sink uint64
	for b.Loop() {
		alg := hashers.NewXXHash64()
		typehash.AppendSlice(alg, data)
		sink = alg.Value()
	}
	_ = sink
}

func BenchmarkAppendEach(b *testing.B) {
	data := make([]int64, 1024)
	for i := range data {
		data[i] = int64(i)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data) * 8))

	var sink uint64
	for b.Loop() {
		alg := hashers.NewXXHash64()
		typehash.AppendEach(alg, data, typehash.Append[int64])
		sink = alg.Value()
	}
	_ = sink
}

func BenchmarkHashStruct(b *testing.B) {
	h := typehash.NewHasher(hashers.NewXXHash64)
	p := point{X: 42, Y: -7}

	b.ReportAllocs()

	var sink uint64
	for b.Loop() {
		sink = h.Hash(p)
	}
	_ = sink
}
