package secp256k1_test

import (
	"math/big"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

func TestSerializeGenerator(t *testing.T) {
	g := secp256k1.S256().G()

	assert.Equal(t,
		hexBytes(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		secp256k1.SerializeCompressed(g))
	assert.Equal(t,
		hexBytes(t, "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"+
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		secp256k1.SerializeUncompressed(g))
}

func TestParsePubKeyRoundTrip(t *testing.T) {
	c := secp256k1.S256()
	for _, e := range []int64{1, 2, 3, 7, 12345, 999999} {
		p, err := c.ComputePublicKey(big.NewInt(e))
		require.NoError(t, err)

		compressed, err := secp256k1.ParsePubKey(secp256k1.SerializeCompressed(p))
		require.NoError(t, err)
		assert.True(t, p.Equal(compressed), "compressed e=%d", e)

		uncompressed, err := secp256k1.ParsePubKey(secp256k1.SerializeUncompressed(p))
		require.NoError(t, err)
		assert.True(t, p.Equal(uncompressed), "uncompressed e=%d", e)
	}
}

func TestParsePubKeyFromDecred(t *testing.T) {
	key := dcrsecp.PrivKeyFromBytes(hexBytes(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"))
	pub := key.PubKey()

	fromCompressed, err := secp256k1.ParsePubKey(pub.SerializeCompressed())
	require.NoError(t, err)
	fromUncompressed, err := secp256k1.ParsePubKey(pub.SerializeUncompressed())
	require.NoError(t, err)

	assert.True(t, fromCompressed.Equal(fromUncompressed))
	assert.Equal(t, pub.SerializeUncompressed(), secp256k1.SerializeUncompressed(fromCompressed))
}

func TestParsePubKeyErrors(t *testing.T) {
	g := secp256k1.S256().G()
	compressed := secp256k1.SerializeCompressed(g)
	uncompressed := secp256k1.SerializeUncompressed(g)

	badCompressedPrefix := append([]byte{0x05}, compressed[1:]...)
	badUncompressedPrefix := append([]byte{0x02}, uncompressed[1:]...)

	offCurve := append([]byte(nil), uncompressed...)
	offCurve[64] ^= 0x01

	// x = 5 has no square root of x^3 + 7 on secp256k1.
	noRoot := make([]byte, 33)
	noRoot[0] = 0x02
	noRoot[32] = 0x05

	tooBigX := append([]byte{0x02}, hexBytes(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")...)

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, secp256k1.ErrPubKeyInvalidLen},
		{"short", compressed[:32], secp256k1.ErrPubKeyInvalidLen},
		{"bad compressed prefix", badCompressedPrefix, secp256k1.ErrPubKeyInvalidFormat},
		{"bad uncompressed prefix", badUncompressedPrefix, secp256k1.ErrPubKeyInvalidFormat},
		{"off curve", offCurve, secp256k1.ErrPubKeyNotOnCurve},
		{"no square root", noRoot, secp256k1.ErrPubKeyNotOnCurve},
		{"x too big", tooBigX, secp256k1.ErrPubKeyNotOnCurve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := secp256k1.ParsePubKey(tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecompressYParity(t *testing.T) {
	c := secp256k1.S256()
	g := c.G()

	even, err := c.DecompressY(g.X(), false)
	require.NoError(t, err)
	odd, err := c.DecompressY(g.X(), true)
	require.NoError(t, err)

	assert.Equal(t, uint(0), even.Value().Bit(0))
	assert.Equal(t, uint(1), odd.Value().Bit(0))
	assert.True(t, g.Y().Equal(even), "generator y is even")
	assert.True(t, odd.Equal(even.Neg()))
}
