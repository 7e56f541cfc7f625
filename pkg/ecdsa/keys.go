package ecdsa

import (
	"crypto"
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/coinbase/cb-secp256k1-go/internal/secmem"
	"github.com/coinbase/cb-secp256k1-go/pkg/curve"
	"github.com/coinbase/cb-secp256k1-go/pkg/hash"
	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

// PublicKey is a point on secp256k1 other than the identity.
type PublicKey struct {
	point *curve.Affine
}

// NewPublicKey wraps p after checking that it lies on secp256k1.
func NewPublicKey(p *curve.Affine) (*PublicKey, error) {
	if p == nil || !secp256k1.S256().IsOnCurve(p) {
		return nil, secp256k1.ErrPubKeyNotOnCurve
	}
	return &PublicKey{point: p}, nil
}

// ParsePubKey decodes a compressed or uncompressed SEC 1 public key.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	p, err := secp256k1.ParsePubKey(serialized)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// Point returns the underlying curve point.
func (k *PublicKey) Point() *curve.Affine { return k.point }

// SerializeCompressed returns the 33-byte SEC 1 encoding.
func (k *PublicKey) SerializeCompressed() []byte {
	return secp256k1.SerializeCompressed(k.point)
}

// SerializeUncompressed returns the 65-byte SEC 1 encoding.
func (k *PublicKey) SerializeUncompressed() []byte {
	return secp256k1.SerializeUncompressed(k.point)
}

// Hash160 returns RIPEMD160(SHA256(compressed key)), the identifier Bitcoin
// uses in pay-to-pubkey-hash outputs.
func (k *PublicKey) Hash160() [hash.Size160]byte {
	return hash.Hash160(k.SerializeCompressed())
}

// IsEqual reports whether k and other are the same point.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.point.Equal(other.point)
}

// PrivateKey is a secp256k1 scalar d in [1, n-1] together with its public
// key d*G.
type PrivateKey struct {
	d   *big.Int
	pub PublicKey
}

var _ crypto.Signer = (*PrivateKey)(nil)

// NewPrivateKey derives the key pair for scalar d. d is copied.
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	pub, err := secp256k1.S256().ComputePublicKey(d)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{d: new(big.Int).Set(d), pub: PublicKey{point: pub}}, nil
}

// PrivKeyFromBytes decodes a 32-byte big-endian scalar.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != secp256k1.ByteSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPrivateKeyLen, len(b))
	}
	d := new(big.Int).SetBytes(b)
	defer secmem.Int(d)
	return NewPrivateKey(d)
}

// GeneratePrivateKey draws a uniform scalar from rand. A nil rand selects
// crypto/rand.Reader.
func GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	d, err := randScalar(rand)
	if err != nil {
		return nil, err
	}
	defer secmem.Int(d)
	return NewPrivateKey(d)
}

// randScalar reads 32-byte candidates from rand until one lies in [1, n-1].
func randScalar(rand io.Reader) (*big.Int, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	n := secp256k1.S256().N()

	var buf [secp256k1.ByteSize]byte
	defer secmem.Bytes(buf[:])
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("ecdsa: read random scalar: %w", err)
		}
		v := new(big.Int).SetBytes(buf[:])
		if v.Sign() > 0 && v.Cmp(n) < 0 {
			return v, nil
		}
	}
}

// D returns a copy of the private scalar.
func (k *PrivateKey) D() *big.Int { return new(big.Int).Set(k.d) }

// PubKey returns the public half of the key pair.
func (k *PrivateKey) PubKey() *PublicKey {
	pub := k.pub
	return &pub
}

// Serialize returns d as 32 big-endian bytes.
func (k *PrivateKey) Serialize() []byte {
	return k.d.FillBytes(make([]byte, secp256k1.ByteSize))
}

// Zero overwrites the private scalar. The key must not be used afterwards.
func (k *PrivateKey) Zero() {
	if k == nil {
		return
	}
	secmem.Int(k.d)
}

// Public implements crypto.Signer.
func (k *PrivateKey) Public() crypto.PublicKey {
	return k.PubKey()
}

// Sign implements crypto.Signer. digest must already be hashed; opts is not
// consulted and rand is ignored because the nonce is derived with RFC 6979.
// The signature is returned DER encoded.
func (k *PrivateKey) Sign(_ io.Reader, digest []byte, _ crypto.SignerOpts) ([]byte, error) {
	sig, err := SignDeterministic(digest, k.d)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}
