// Package rfc6979 derives ECDSA nonces deterministically from the private key
// and the message digest, following RFC 6979 section 3.2
// (https://www.rfc-editor.org/rfc/rfc6979).
//
// The nonce k is the output of an HMAC-DRBG seeded with int2octets(x) and
// bits2octets(h1). Signing the same digest with the same key always yields
// the same k, so no randomness source is consulted at signing time.
//
// # MAC
//
// The MAC is an external collaborator. HMACSHA256 is the default and is
// built on the SHA-256 implementation of the hash package; HMAC adapts any
// other hash constructor. The tag length of the MAC sets the length of the
// internal K and V buffers.
//
// # Termination
//
// The candidate loop of step h is unbounded: a candidate outside [1, q-1]
// triggers a reseed and another round. For a 256-bit order the first
// candidate is accepted with overwhelming probability, and GenerateK never
// substitutes a fallback value. Callers that need a hard latency bound use
// GenerateKContext and cancel the context; cancellation is checked before
// each reseed.
package rfc6979
