package hashers

import (
	"hash/crc32"

	"github.com/hupe1980/typehash"
)

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing it once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// NewCRC32C returns a fresh CRC32-Castagnoli backend. CRC32C is a checksum,
// not a hash function: use it for cheap integrity fingerprints, not for
// hash tables. Hardware accelerated on x86 (SSE4.2) and ARM (CRC
// extension).
func NewCRC32C() typehash.Algorithm[uint32] {
	return Hash32(crc32.New(crc32cTable))
}
