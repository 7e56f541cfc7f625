package secp256k1

import (
	"fmt"

	"github.com/coinbase/cb-secp256k1-go/pkg/curve"
	"github.com/coinbase/cb-secp256k1-go/pkg/field"
)

// SEC 1 public key encodings.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65

	pubKeyFormatCompressedEven byte = 0x02
	pubKeyFormatCompressedOdd  byte = 0x03
	pubKeyFormatUncompressed   byte = 0x04
)

// SerializeCompressed encodes p as 0x02/0x03 || x, the prefix carrying the
// parity of y.
func SerializeCompressed(p *curve.Affine) []byte {
	out := make([]byte, 0, PubKeyBytesLenCompressed)
	format := pubKeyFormatCompressedEven
	if p.Y().Value().Bit(0) == 1 {
		format = pubKeyFormatCompressedOdd
	}
	out = append(out, format)
	return append(out, p.X().Bytes()...)
}

// SerializeUncompressed encodes p as 0x04 || x || y.
func SerializeUncompressed(p *curve.Affine) []byte {
	out := make([]byte, 0, PubKeyBytesLenUncompressed)
	out = append(out, pubKeyFormatUncompressed)
	out = append(out, p.X().Bytes()...)
	return append(out, p.Y().Bytes()...)
}

// ParsePubKey decodes a compressed or uncompressed SEC 1 public key and
// verifies that it lies on secp256k1.
func ParsePubKey(serialized []byte) (*curve.Affine, error) {
	c := S256()

	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		if serialized[0] != pubKeyFormatUncompressed {
			return nil, fmt.Errorf("%w: prefix %d for uncompressed key", ErrPubKeyInvalidFormat, serialized[0])
		}
		p, err := c.PointFromBytes(serialized[1:33], serialized[33:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPubKeyNotOnCurve, err)
		}
		return p, nil

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format != pubKeyFormatCompressedEven && format != pubKeyFormatCompressedOdd {
			return nil, fmt.Errorf("%w: prefix %d for compressed key", ErrPubKeyInvalidFormat, format)
		}
		x, err := c.coordinate(serialized[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPubKeyNotOnCurve, err)
		}
		y, err := c.DecompressY(x, format == pubKeyFormatCompressedOdd)
		if err != nil {
			return nil, err
		}
		return curve.NewAffine(c.a, c.b, x, y)

	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrPubKeyInvalidLen, len(serialized))
	}
}

// DecompressY returns the y-coordinate with the requested parity for the
// point with x-coordinate x. Since p = 3 mod 4 the square root of
// c = x^3 + 7 is c^((p+1)/4); a result whose square is not c means x is not
// on the curve.
func (c *Params) DecompressY(x field.Element, odd bool) (field.Element, error) {
	x3, err := x.PowInt64(3)
	if err != nil {
		return field.Element{}, err
	}
	rhs, err := x3.Add(c.b)
	if err != nil {
		return field.Element{}, err
	}
	y, err := rhs.Pow(c.sqrtExp)
	if err != nil {
		return field.Element{}, err
	}
	check, err := y.Mul(y)
	if err != nil {
		return field.Element{}, err
	}
	if !check.Equal(rhs) {
		return field.Element{}, fmt.Errorf("%w: x has no square root", ErrPubKeyNotOnCurve)
	}

	if (y.Value().Bit(0) == 1) != odd {
		y = y.Neg()
	}
	return y, nil
}
