package rfc6979

import (
	"context"
	"errors"
	"math/big"

	"github.com/coinbase/cb-secp256k1-go/internal/secmem"
)

var (
	// ErrInvalidOrder indicates a group order smaller than 2.
	ErrInvalidOrder = errors.New("rfc6979: invalid group order")

	// ErrInvalidKey indicates a nil or negative private key.
	ErrInvalidKey = errors.New("rfc6979: invalid private key")
)

// GenerateK returns the deterministic nonce for private key x and message
// digest h1 in a group of order q. The candidate loop runs until it finds a
// value in [1, q-1]. GenerateK panics if q < 2 or x is nil or negative.
func GenerateK(mac MAC, q, x *big.Int, h1 []byte) *big.Int {
	k, err := GenerateKContext(context.Background(), mac, q, x, h1, nil)
	if err != nil {
		panic(err)
	}
	return k
}

// GenerateKContext is GenerateK with two additions: extra, when non-empty,
// is appended to the seed material of steps d and f as the additional data
// k' of RFC 6979 section 3.6, and ctx is consulted before every reseed so
// the caller can bound the loop.
func GenerateKContext(ctx context.Context, mac MAC, q, x *big.Int, h1, extra []byte) (*big.Int, error) {
	if q == nil || q.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidOrder
	}
	if x == nil || x.Sign() < 0 {
		return nil, ErrInvalidKey
	}
	qlen := q.BitLen()
	rolen := byteLen(q)

	xOctets := Int2Octets(x, rolen)
	hOctets := Bits2Octets(h1, q)
	defer secmem.Bytes(xOctets)

	// Steps b and c.
	v := make([]byte, mac.Size())
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, mac.Size())

	seed := func(marker byte) {
		msg := concat(v, []byte{marker}, xOctets, hOctets, extra)
		k = mac.Sum(k, msg)
		secmem.Bytes(msg)
		v = mac.Sum(k, v)
	}
	// Steps d through g.
	seed(0x00)
	seed(0x01)
	defer func() {
		secmem.Bytes(k)
		secmem.Bytes(v)
	}()

	// Step h.
	t := make([]byte, 0, rolen+mac.Size())
	for {
		t = t[:0]
		for len(t) < rolen {
			v = mac.Sum(k, v)
			t = append(t, v...)
		}
		candidate := Bits2Int(t[:rolen], qlen)
		secmem.Bytes(t)
		if candidate.Sign() > 0 && candidate.Cmp(q) < 0 {
			return candidate, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		k = mac.Sum(k, concat(v, []byte{0x00}))
		v = mac.Sum(k, v)
	}
}
