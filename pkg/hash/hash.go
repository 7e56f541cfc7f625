package hash

import (
	"hash"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // HASH160 is defined over RIPEMD-160
)

// Size is the length in bytes of Sum256 and DoubleSum256 digests.
const Size = sha256.Size

// Size160 is the length in bytes of a Hash160 digest.
const Size160 = ripemd160.Size

// New returns a SHA-256 hash.Hash. It is the constructor handed to HMAC.
func New() hash.Hash {
	return sha256.New()
}

// Sum256 returns SHA-256(data).
func Sum256(data []byte) [Size]byte {
	return sha256.Sum256(data)
}

// DoubleSum256 returns SHA-256(SHA-256(data)).
func DoubleSum256(data []byte) [Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash160 returns RIPEMD-160(SHA-256(data)).
func Hash160(data []byte) [Size160]byte {
	inner := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(inner[:])

	var out [Size160]byte
	copy(out[:], h.Sum(nil))
	return out
}
