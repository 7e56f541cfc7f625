// Package k1 is the single-import entry point for secp256k1 ECDSA. It
// re-exports the key, signature and signer types of package ecdsa, the
// sentinel errors of the lower layers, and the module version.
//
// SignMessage and VerifyMessage cover the common case of signing a raw
// message: the message is hashed with double SHA-256 before it reaches the
// signature layer. Callers holding a digest use the ecdsa functions directly.
package k1
