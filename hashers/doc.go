// Package hashers provides concrete Algorithm backends for typehash.
//
// # Backends
//
//	NewDebug     records consumed bytes verbatim; for tests and inspection
//	NewXXHash64  xxHash64 (github.com/cespare/xxhash/v2)
//	NewWyhash64  wyhash (go.dw1.io/x/hash/wyhash)
//	NewBlake3    BLAKE3, 32-byte digest (github.com/zeebo/blake3)
//	NewCRC32C    CRC32-Castagnoli, hardware accelerated (hash/crc32)
//
// [Hash32], [Hash64], and [Stream] lift any stdlib-compatible streaming
// digest into an Algorithm, which is how most backends here are built.
//
// The framework imposes no format or byte-order requirement on backends;
// each consumes the span sequence as-is. None of the backends are safe for
// concurrent use; give each hashing operation its own instance, which
// [typehash.Hasher] does by construction.
package hashers
