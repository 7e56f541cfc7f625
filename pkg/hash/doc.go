// Package hash supplies the digest functions the signing layer depends on:
// SHA-256 (accelerated through github.com/minio/sha256-simd), the double
// SHA-256 "hash256" used for Bitcoin message digests, and HASH160
// (RIPEMD-160 over SHA-256) for public-key identifiers.
package hash
