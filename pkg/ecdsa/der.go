package ecdsa

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

// SignatureBytesLen is the length of the fixed-width r || s encoding.
const SignatureBytesLen = 2 * secp256k1.ByteSize

// Serialize returns the ASN.1 DER encoding
//
//	SEQUENCE { r INTEGER, s INTEGER }
func (sig *Signature) Serialize() []byte {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.R())
		b.AddASN1BigInt(sig.S())
	})
	return b.BytesOrPanic()
}

// Bytes returns r and s as two 32-byte big-endian values. It panics if either
// component is negative or does not fit in 32 bytes, which cannot happen for
// signatures produced by Sign or the parsers.
func (sig *Signature) Bytes() []byte {
	r, s := sig.R(), sig.S()
	if !fitsBytes(r) || !fitsBytes(s) {
		panic(fmt.Sprintf("ecdsa: signature component out of range: %s", sig))
	}
	out := make([]byte, SignatureBytesLen)
	r.FillBytes(out[:secp256k1.ByteSize])
	s.FillBytes(out[secp256k1.ByteSize:])
	return out
}

func fitsBytes(v *big.Int) bool {
	return v.Sign() >= 0 && v.BitLen() <= 8*secp256k1.ByteSize
}

// ParseDERSignature decodes a strict DER signature and checks that both
// components lie in [1, n-1]. Trailing bytes, non-minimal integer encodings
// and negative values are rejected.
func ParseDERSignature(der []byte) (*Signature, error) {
	var (
		input = cryptobyte.String(der)
		inner cryptobyte.String
		r     = new(big.Int)
		s     = new(big.Int)
	)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: expected a single SEQUENCE", ErrSigInvalidDER)
	}
	if !inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) || !inner.Empty() {
		return nil, fmt.Errorf("%w: expected two INTEGERs", ErrSigInvalidDER)
	}

	n := secp256k1.S256().N()
	switch {
	case r.Sign() < 0:
		return nil, fmt.Errorf("%w: R is negative", ErrSigInvalidDER)
	case r.Sign() == 0:
		return nil, ErrSigRIsZero
	case r.Cmp(n) >= 0:
		return nil, ErrSigRTooBig
	}
	switch {
	case s.Sign() < 0:
		return nil, fmt.Errorf("%w: S is negative", ErrSigInvalidDER)
	case s.Sign() == 0:
		return nil, ErrSigSIsZero
	case s.Cmp(n) >= 0:
		return nil, ErrSigSTooBig
	}
	return &Signature{r: r, s: s}, nil
}

// ParseSignatureBytes decodes the fixed-width r || s encoding produced by
// Bytes, applying the same range checks as ParseDERSignature.
func ParseSignatureBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureBytesLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSigInvalidLen, len(b))
	}
	r := new(big.Int).SetBytes(b[:secp256k1.ByteSize])
	s := new(big.Int).SetBytes(b[secp256k1.ByteSize:])

	n := secp256k1.S256().N()
	switch {
	case r.Sign() == 0:
		return nil, ErrSigRIsZero
	case r.Cmp(n) >= 0:
		return nil, ErrSigRTooBig
	case s.Sign() == 0:
		return nil, ErrSigSIsZero
	case s.Cmp(n) >= 0:
		return nil, ErrSigSTooBig
	}
	return &Signature{r: r, s: s}, nil
}
