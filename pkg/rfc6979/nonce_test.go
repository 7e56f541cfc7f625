package rfc6979_test

import (
	"context"
	"crypto/sha512"
	"hash"
	"math/big"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	k1hash "github.com/coinbase/cb-secp256k1-go/pkg/hash"
	"github.com/coinbase/cb-secp256k1-go/pkg/rfc6979"
)

const secp256k1N = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func sha256Of(s string) []byte {
	d := k1hash.Sum256([]byte(s))
	return d[:]
}

func TestGenerateKAppendixA12(t *testing.T) {
	q := hexInt(t, q163)
	x := hexInt(t, "09a4d6792295a7f730fc3f2b49cbc0f62e862272f")

	tests := []struct {
		msg  string
		want string
	}{
		{"sample", "023af4074c90a02b3fe61d286d5c87f425e6bdd81b"},
		{"test", "0193649ce51f0cff0784cfc47628f4fa854a93f7a2"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			k := rfc6979.GenerateK(rfc6979.HMACSHA256, q, x, sha256Of(tt.msg))
			assert.Zero(t, hexInt(t, tt.want).Cmp(k), "got %s", k.Text(16))
		})
	}
}

func TestGenerateKSecp256k1(t *testing.T) {
	n := hexInt(t, secp256k1N)
	k := rfc6979.GenerateK(rfc6979.HMACSHA256, n, big.NewInt(1), sha256Of("Satoshi Nakamoto"))
	assert.Equal(t, "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15", k.Text(16))
}

func TestGenerateKMatchesDecred(t *testing.T) {
	n := hexInt(t, secp256k1N)
	keys := []string{
		"0000000000000000000000000000000000000000000000000000000000000001",
		"e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	}
	msgs := []string{"sample", "test", "Satoshi Nakamoto", ""}

	for _, key := range keys {
		for _, msg := range msgs {
			keyBytes := hexBytes(t, key)
			digest := sha256Of(msg)

			got := rfc6979.GenerateK(rfc6979.HMACSHA256, n, new(big.Int).SetBytes(keyBytes), digest)

			want := dcrsecp.NonceRFC6979(keyBytes, digest, nil, nil, 0)
			wantBytes := want.Bytes()
			assert.Equal(t, wantBytes[:], rfc6979.Int2Octets(got, 32), "key %s msg %q", key, msg)
		}
	}
}

func TestGenerateKExtraDataMatchesDecred(t *testing.T) {
	n := hexInt(t, secp256k1N)
	keyBytes := hexBytes(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35")
	digest := sha256Of("sample")
	extra := k1hash.Sum256([]byte("additional data"))

	got, err := rfc6979.GenerateKContext(context.Background(), rfc6979.HMACSHA256, n, new(big.Int).SetBytes(keyBytes), digest, extra[:])
	require.NoError(t, err)

	want := dcrsecp.NonceRFC6979(keyBytes, digest, extra[:], nil, 0)
	wantBytes := want.Bytes()
	assert.Equal(t, wantBytes[:], rfc6979.Int2Octets(got, 32))
}

func TestGenerateKDeterministic(t *testing.T) {
	n := hexInt(t, secp256k1N)
	x := big.NewInt(12345)
	a := rfc6979.GenerateK(rfc6979.HMACSHA256, n, x, sha256Of("Programming Bitcoin!"))
	b := rfc6979.GenerateK(rfc6979.HMACSHA256, n, x, sha256Of("Programming Bitcoin!"))
	c := rfc6979.GenerateK(rfc6979.HMACSHA256, n, x, sha256Of("Programming Bitcoin?"))

	assert.Zero(t, a.Cmp(b))
	assert.NotZero(t, a.Cmp(c))
	assert.Equal(t, int64(12345), x.Int64(), "private key must not be modified")
}

func TestGenerateKRetries(t *testing.T) {
	// With q just above 2^255 roughly half of all candidates are rejected;
	// this key needs three rounds of step h.
	q := new(big.Int).Lsh(big.NewInt(1), 255)
	q.Add(q, big.NewInt(0x1d))

	counter := &countingMAC{MAC: rfc6979.HMACSHA256}
	k := rfc6979.GenerateK(counter, q, big.NewInt(1), sha256Of("test"))
	assert.Equal(t, "914a7d8e1dae21a8af6ce2f3b451ed6218459e8b06848e478d668bd24515f95", k.Text(16))

	// 4 seeding calls, then 3 candidates with 2 reseed calls between each.
	assert.Equal(t, 4+3+2*2, counter.calls)
}

func TestGenerateKExtraData(t *testing.T) {
	n := hexInt(t, secp256k1N)
	extra := make([]byte, 32)
	for i := range extra {
		extra[i] = 0x01
	}

	k, err := rfc6979.GenerateKContext(context.Background(), rfc6979.HMACSHA256, n, big.NewInt(1), sha256Of("Satoshi Nakamoto"), extra)
	require.NoError(t, err)
	assert.Equal(t, "ff49282725ee554d481ee92230ebf201d5137cdc427fcda67210387e20a1b90b", k.Text(16))

	plain, err := rfc6979.GenerateKContext(context.Background(), rfc6979.HMACSHA256, n, big.NewInt(1), sha256Of("Satoshi Nakamoto"), nil)
	require.NoError(t, err)
	assert.NotZero(t, k.Cmp(plain))
}

func TestGenerateKContextCancelled(t *testing.T) {
	n := hexInt(t, secp256k1N)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A MAC of all 0xff bytes produces candidates >= n forever.
	_, err := rfc6979.GenerateKContext(ctx, constMAC(0xff), n, big.NewInt(1), sha256Of("sample"), nil)
	require.ErrorIs(t, err, context.Canceled)

	// An all-zero MAC produces the rejected candidate 0.
	_, err = rfc6979.GenerateKContext(ctx, constMAC(0x00), n, big.NewInt(1), sha256Of("sample"), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateKContextInvalidInput(t *testing.T) {
	ctx := context.Background()
	_, err := rfc6979.GenerateKContext(ctx, rfc6979.HMACSHA256, big.NewInt(1), big.NewInt(1), nil, nil)
	require.ErrorIs(t, err, rfc6979.ErrInvalidOrder)

	_, err = rfc6979.GenerateKContext(ctx, rfc6979.HMACSHA256, nil, big.NewInt(1), nil, nil)
	require.ErrorIs(t, err, rfc6979.ErrInvalidOrder)

	_, err = rfc6979.GenerateKContext(ctx, rfc6979.HMACSHA256, hexInt(t, secp256k1N), big.NewInt(-1), nil, nil)
	require.ErrorIs(t, err, rfc6979.ErrInvalidKey)

	assert.Panics(t, func() {
		rfc6979.GenerateK(rfc6979.HMACSHA256, big.NewInt(0), big.NewInt(1), nil)
	})
}

func TestHMACOtherHash(t *testing.T) {
	mac := rfc6979.HMAC(func() hash.Hash { return sha512.New() })
	assert.Equal(t, sha512.Size, mac.Size())

	n := hexInt(t, secp256k1N)
	k := rfc6979.GenerateK(mac, n, big.NewInt(7), sha256Of("sample"))
	assert.True(t, k.Sign() > 0 && k.Cmp(n) < 0)

	// A different MAC gives a different nonce for the same inputs.
	k256 := rfc6979.GenerateK(rfc6979.HMACSHA256, n, big.NewInt(7), sha256Of("sample"))
	assert.NotZero(t, k.Cmp(k256))
}

type countingMAC struct {
	rfc6979.MAC
	calls int
}

func (m *countingMAC) Sum(key, message []byte) []byte {
	m.calls++
	return m.MAC.Sum(key, message)
}

type constMAC byte

func (constMAC) Size() int { return 32 }

func (m constMAC) Sum(_, _ []byte) []byte {
	out := make([]byte, 32)
	for i := range out {
		out[i] = byte(m)
	}
	return out
}
