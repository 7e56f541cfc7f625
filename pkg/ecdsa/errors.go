package ecdsa

import "errors"

var (
	// ErrDegenerateNonce indicates a nonce that produced r = 0, s = 0 or the
	// point at infinity. Signing must be repeated with a different nonce.
	ErrDegenerateNonce = errors.New("ecdsa: degenerate nonce")

	// ErrInvalidNonce indicates a nonce outside [1, n-1].
	ErrInvalidNonce = errors.New("ecdsa: nonce out of range")

	// ErrInvalidPrivateKeyLen indicates a serialized private key that is not
	// exactly 32 bytes.
	ErrInvalidPrivateKeyLen = errors.New("ecdsa: malformed private key: invalid length")

	// ErrNilKey indicates a nil key passed where one is required.
	ErrNilKey = errors.New("ecdsa: nil key")

	// ErrSigInvalidDER indicates bytes that are not a DER SEQUENCE of two
	// INTEGERs.
	ErrSigInvalidDER = errors.New("ecdsa: malformed signature: invalid DER")

	// ErrSigInvalidLen indicates a fixed-width signature that is not exactly
	// 64 bytes.
	ErrSigInvalidLen = errors.New("ecdsa: malformed signature: invalid length")

	// ErrSigRIsZero indicates a signature whose r component is zero.
	ErrSigRIsZero = errors.New("ecdsa: malformed signature: R is 0")

	// ErrSigSIsZero indicates a signature whose s component is zero.
	ErrSigSIsZero = errors.New("ecdsa: malformed signature: S is 0")

	// ErrSigRTooBig indicates a signature whose r component is not below the
	// group order.
	ErrSigRTooBig = errors.New("ecdsa: malformed signature: R >= group order")

	// ErrSigSTooBig indicates a signature whose s component is not below the
	// group order.
	ErrSigSTooBig = errors.New("ecdsa: malformed signature: S >= group order")
)
