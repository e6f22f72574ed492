package hashers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/typehash"
)

// Debug records the exact byte stream a decomposition produces, span by
// span, without any mixing. It answers "what bytes would a real backend
// see" and is the reference backend for the framework's own tests: two
// values decompose identically iff their Debug recordings are equal.
type Debug struct {
	buf  []byte
	ends []int // end offset in buf of each consumed span
}

var _ typehash.Algorithm[[]byte] = (*Debug)(nil)

// NewDebug returns a fresh recording backend. It returns the concrete type
// so callers can reach [Debug.Spans] and [Debug.String]; wrap in a closure
// to plug it into [typehash.NewHasher].
func NewDebug() *Debug {
	return &Debug{}
}

// Consume records b. Zero-length spans are recorded as span boundaries even
// though they contribute no bytes.
func (d *Debug) Consume(b []byte) {
	d.buf = append(d.buf, b...)
	d.ends = append(d.ends, len(d.buf))
}

// Value returns a copy of every byte consumed so far, in consumption order.
func (d *Debug) Value() []byte {
	return slices.Clone(d.buf)
}

// Spans returns copies of the individual consumed spans, in consumption
// order.
func (d *Debug) Spans() [][]byte {
	out := make([][]byte, len(d.ends))
	start := 0
	for i, end := range d.ends {
		out[i] = slices.Clone(d.buf[start:end])
		start = end
	}
	return out
}

// Reset discards everything recorded so far.
func (d *Debug) Reset() {
	d.buf = d.buf[:0]
	d.ends = d.ends[:0]
}

// String renders the recorded bytes as a hex dump, 16 bytes per line.
func (d *Debug) String() string {
	var sb strings.Builder
	for i, c := range d.buf {
		fmt.Fprintf(&sb, "%02x", c)
		if (i+1)%16 == 0 {
			sb.WriteByte('\n')
		} else if i != len(d.buf)-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
