package ecdsa_test

import (
	"crypto"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/yawning/secp256k1-voi/secec"

	"github.com/coinbase/cb-secp256k1-go/pkg/ecdsa"
	"github.com/coinbase/cb-secp256k1-go/pkg/hash"
)

// High-s signatures are valid ECDSA; only the malleability check rejects them.
var voiOptions = &secec.ECDSAOptions{
	Hash:            crypto.SHA256,
	Encoding:        secec.EncodingCompact,
	RejectMalleable: false,
}

func TestVoiAgreesOnPublicKeys(t *testing.T) {
	for _, k := range interopKeys {
		raw := hexBytes(t, k)
		voiKey, err := secec.NewPrivateKey(raw)
		require.NoError(t, err)

		key, err := ecdsa.PrivKeyFromBytes(raw)
		require.NoError(t, err)

		p := voiKey.PublicKey().Point()
		assert.Equal(t, p.CompressedBytes(), key.PubKey().SerializeCompressed(), "key %s", k)
		assert.Equal(t, p.UncompressedBytes(), key.PubKey().SerializeUncompressed(), "key %s", k)
	}
}

func TestVoiVerifiesOurSignatures(t *testing.T) {
	for _, k := range interopKeys {
		raw := hexBytes(t, k)
		voiKey, err := secec.NewPrivateKey(raw)
		require.NoError(t, err)
		key, err := ecdsa.PrivKeyFromBytes(raw)
		require.NoError(t, err)

		for _, msg := range interopMessages {
			digest := hash.Sum256([]byte(msg))
			sig, err := ecdsa.SignDeterministic(digest[:], key.D())
			require.NoError(t, err)
			assert.True(t, voiKey.PublicKey().Verify(digest[:], sig.Bytes(), voiOptions), "key %s msg %q", k, msg)
		}
	}
}

func TestWeVerifyVoiSignatures(t *testing.T) {
	for _, k := range interopKeys {
		raw := hexBytes(t, k)
		voiKey, err := secec.NewPrivateKey(raw)
		require.NoError(t, err)
		key, err := ecdsa.PrivKeyFromBytes(raw)
		require.NoError(t, err)

		for _, msg := range interopMessages {
			digest := hash.Sum256([]byte(msg))
			compact, err := voiKey.Sign(rand.Reader, digest[:], voiOptions)
			require.NoError(t, err)

			sig, err := ecdsa.ParseSignatureBytes(compact)
			require.NoError(t, err)
			assert.True(t, ecdsa.Verify(sig, digest[:], key.PubKey()), "key %s msg %q", k, msg)
		}
	}
}
