// Package ecdsa signs and verifies message digests with ECDSA over
// secp256k1.
//
// The package exposes two layers. The functions Sign, SignDeterministic,
// SignRandom and Verify operate on raw scalars and digests and carry no
// state. Signer binds a PrivateKey to a Config and adds context
// cancellation and structured logging on top of the same functions.
//
// # Nonces
//
// Sign takes the nonce k explicitly and reports ErrDegenerateNonce when k
// produces r = 0 or s = 0; the caller picks another k. SignDeterministic
// derives k with RFC 6979 (HMAC-SHA256), SignRandom draws it from a
// randomness source and retries degenerate draws on its own.
//
// Signatures are returned as produced: s is not normalized to the lower
// half of the order. Verify accepts both halves.
//
// # Encodings
//
//	sig.Serialize()           // ASN.1 DER, as used by Bitcoin and X.509
//	sig.Bytes()               // fixed 64-byte r || s
//	pub.SerializeCompressed() // 33-byte SEC 1 point
//
// # Timing
//
// All arithmetic runs on math/big and is variable-time. Keep the package
// away from settings where an attacker can time signing operations.
//
// # Example
//
//	key, err := ecdsa.GeneratePrivateKey(nil)
//	if err != nil {
//	    return err
//	}
//	defer key.Zero()
//
//	digest := hash.DoubleSum256(msg)
//	sig, err := ecdsa.SignDeterministic(digest[:], key.D())
//	if err != nil {
//	    return err
//	}
//	ok := ecdsa.Verify(sig, digest[:], key.PubKey())
package ecdsa
