package secp256k1

import "errors"

var (
	// ErrInvalidPrivateKey indicates a private scalar outside [1, n-1].
	ErrInvalidPrivateKey = errors.New("secp256k1: private key out of range")

	// ErrCoordinateTooBig indicates a coordinate that is not reduced mod p.
	ErrCoordinateTooBig = errors.New("secp256k1: coordinate is not less than the field prime")

	// ErrPubKeyInvalidLen indicates a serialized public key of the wrong
	// length for its format.
	ErrPubKeyInvalidLen = errors.New("secp256k1: malformed public key: invalid length")

	// ErrPubKeyInvalidFormat indicates an unknown SEC 1 prefix byte.
	ErrPubKeyInvalidFormat = errors.New("secp256k1: malformed public key: invalid format")

	// ErrPubKeyNotOnCurve indicates a serialized public key that does not
	// describe a point on the curve.
	ErrPubKeyNotOnCurve = errors.New("secp256k1: public key is not on the curve")
)
