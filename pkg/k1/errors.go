package k1

import (
	"errors"

	"github.com/coinbase/cb-secp256k1-go/pkg/curve"
	"github.com/coinbase/cb-secp256k1-go/pkg/ecdsa"
	"github.com/coinbase/cb-secp256k1-go/pkg/field"
	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

// Sentinel errors of the underlying packages. Match them with errors.Is.
var (
	ErrInvalidElement    = field.ErrInvalidElement
	ErrOrderMismatch     = field.ErrOrderMismatch
	ErrDivisionByZero    = field.ErrDivisionByZero
	ErrNotOnCurve        = curve.ErrNotOnCurve
	ErrCurveMismatch     = curve.ErrCurveMismatch
	ErrNegativeScalar    = curve.ErrNegativeScalar
	ErrInvalidPrivateKey = secp256k1.ErrInvalidPrivateKey
	ErrPubKeyNotOnCurve  = secp256k1.ErrPubKeyNotOnCurve
	ErrDegenerateNonce   = ecdsa.ErrDegenerateNonce
	ErrInvalidNonce      = ecdsa.ErrInvalidNonce
	ErrSigInvalidDER     = ecdsa.ErrSigInvalidDER
)

// IsMalformedInput reports whether err stems from decoding bytes that do not
// describe a valid key or signature, as opposed to a failure while signing.
func IsMalformedInput(err error) bool {
	for _, target := range malformed {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var malformed = []error{
	ecdsa.ErrInvalidPrivateKeyLen,
	ecdsa.ErrSigInvalidDER,
	ecdsa.ErrSigInvalidLen,
	ecdsa.ErrSigRIsZero,
	ecdsa.ErrSigSIsZero,
	ecdsa.ErrSigRTooBig,
	ecdsa.ErrSigSTooBig,
	secp256k1.ErrInvalidPrivateKey,
	secp256k1.ErrCoordinateTooBig,
	secp256k1.ErrPubKeyInvalidLen,
	secp256k1.ErrPubKeyInvalidFormat,
	secp256k1.ErrPubKeyNotOnCurve,
}
