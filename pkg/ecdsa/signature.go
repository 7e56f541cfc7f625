package ecdsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/coinbase/cb-secp256k1-go/internal/secmem"
	"github.com/coinbase/cb-secp256k1-go/pkg/curve"
	"github.com/coinbase/cb-secp256k1-go/pkg/rfc6979"
	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

// Signature is an ECDSA signature (r, s) with both components in [1, n-1].
type Signature struct {
	r, s *big.Int
}

// NewSignature copies r and s into a Signature. A nil component is taken
// as 0. The values are not range-checked; Verify rejects out-of-range
// components and Bytes panics on components wider than 32 bytes.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: orZero(r), s: orZero(s)}
}

// orZero returns a copy of v, or a new zero for nil.
func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// R returns a copy of r.
func (sig *Signature) R() *big.Int { return orZero(sig.r) }

// S returns a copy of s.
func (sig *Signature) S() *big.Int { return orZero(sig.s) }

// IsEqual reports whether both signatures have the same r and s.
func (sig *Signature) IsEqual(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return sig.R().Cmp(other.R()) == 0 && sig.S().Cmp(other.S()) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%s,%s)", sig.R().Text(16), sig.S().Text(16))
}

// hashToInt keeps the leftmost bitlen(n) bits of the digest.
func hashToInt(z []byte, n *big.Int) *big.Int {
	return rfc6979.Bits2Int(z, n.BitLen())
}

func inRange(v, n *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(n) < 0
}

// Sign computes the signature of digest z under private scalar e with nonce
// k:
//
//	R = k*G, r = R.x mod n, s = k^-1 * (z + r*e) mod n
//
// k must lie in [1, n-1] and must never be reused across different digests.
// ErrDegenerateNonce reports an r or s of zero; sign again with a different
// k.
func Sign(z []byte, e, k *big.Int) (*Signature, error) {
	c := secp256k1.S256()
	n := c.N()

	if !inRange(e, n) {
		return nil, secp256k1.ErrInvalidPrivateKey
	}
	if !inRange(k, n) {
		return nil, ErrInvalidNonce
	}

	point, err := curve.ScalarMult(c.G(), k)
	if err != nil {
		return nil, err
	}
	rPoint, ok := point.(*curve.Affine)
	if !ok {
		return nil, fmt.Errorf("%w: k*G is the identity", ErrDegenerateNonce)
	}

	r := rPoint.X().Value()
	r.Mod(r, n)
	if r.Sign() == 0 {
		return nil, fmt.Errorf("%w: r is zero", ErrDegenerateNonce)
	}

	// k^(n-2) = k^-1 since n is prime.
	kInv := new(big.Int).Sub(n, big.NewInt(2))
	kInv.Exp(k, kInv, n)
	defer secmem.Int(kInv)

	s := new(big.Int).Mul(r, e)
	s.Add(s, hashToInt(z, n))
	s.Mul(s, kInv)
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil, fmt.Errorf("%w: s is zero", ErrDegenerateNonce)
	}

	return &Signature{r: r, s: s}, nil
}

// SignDeterministic signs digest z under e with the RFC 6979 nonce derived
// from HMAC-SHA256.
func SignDeterministic(z []byte, e *big.Int) (*Signature, error) {
	n := secp256k1.S256().N()
	if !inRange(e, n) {
		return nil, secp256k1.ErrInvalidPrivateKey
	}
	k := rfc6979.GenerateK(rfc6979.HMACSHA256, n, e, z)
	defer secmem.Int(k)
	return Sign(z, e, k)
}

// SignRandom signs digest z under e with a nonce drawn from rand, drawing
// again whenever the nonce is degenerate. A nil rand selects
// crypto/rand.Reader.
func SignRandom(rand io.Reader, z []byte, e *big.Int) (*Signature, error) {
	for {
		k, err := randScalar(rand)
		if err != nil {
			return nil, err
		}
		sig, err := Sign(z, e, k)
		secmem.Int(k)
		if errors.Is(err, ErrDegenerateNonce) {
			continue
		}
		return sig, err
	}
}

// Verify reports whether sig is a valid signature of digest z under pub.
// Malformed input of any kind yields false.
func Verify(sig *Signature, z []byte, pub *PublicKey) bool {
	if sig == nil || pub == nil || pub.point == nil {
		return false
	}
	c := secp256k1.S256()
	n := c.N()
	if !inRange(sig.r, n) || !inRange(sig.s, n) {
		return false
	}
	if !c.IsOnCurve(pub.point) {
		return false
	}

	w := new(big.Int).Sub(n, big.NewInt(2))
	w.Exp(sig.s, w, n)

	u1 := hashToInt(z, n)
	u1.Mul(u1, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.r, w)
	u2.Mod(u2, n)

	p1, err := curve.ScalarMult(c.G(), u1)
	if err != nil {
		return false
	}
	p2, err := curve.ScalarMult(pub.point, u2)
	if err != nil {
		return false
	}
	sum, err := curve.Add(p1, p2)
	if err != nil {
		return false
	}
	total, ok := sum.(*curve.Affine)
	if !ok {
		return false
	}

	x := total.X().Value()
	x.Mod(x, n)
	return x.Cmp(sig.r) == 0
}
