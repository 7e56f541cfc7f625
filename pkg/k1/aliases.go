package k1

import (
	"io"

	"github.com/coinbase/cb-secp256k1-go/internal/secmem"
	"github.com/coinbase/cb-secp256k1-go/pkg/ecdsa"
	"github.com/coinbase/cb-secp256k1-go/pkg/hash"
	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

type (
	// PrivateKey is an alias for ecdsa.PrivateKey.
	PrivateKey = ecdsa.PrivateKey
	// PublicKey is an alias for ecdsa.PublicKey.
	PublicKey = ecdsa.PublicKey
	// Signature is an alias for ecdsa.Signature.
	Signature = ecdsa.Signature
	// Signer is an alias for ecdsa.Signer.
	Signer = ecdsa.Signer
	// SignerConfig is an alias for ecdsa.Config.
	SignerConfig = ecdsa.Config
	// Params is an alias for secp256k1.Params.
	Params = secp256k1.Params
)

// S256 returns the secp256k1 domain parameters.
func S256() *Params { return secp256k1.S256() }

// GeneratePrivateKey draws a new key from rand, or crypto/rand when rand is
// nil.
func GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	return ecdsa.GeneratePrivateKey(rand)
}

// PrivKeyFromBytes decodes a 32-byte big-endian private key.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) { return ecdsa.PrivKeyFromBytes(b) }

// ParsePubKey decodes a SEC 1 public key.
func ParsePubKey(b []byte) (*PublicKey, error) { return ecdsa.ParsePubKey(b) }

// ParseDERSignature decodes a DER signature.
func ParseDERSignature(b []byte) (*Signature, error) { return ecdsa.ParseDERSignature(b) }

// NewSigner binds key to cfg.
func NewSigner(key *PrivateKey, cfg SignerConfig) (*Signer, error) {
	return ecdsa.NewSigner(key, cfg)
}

// Verify reports whether sig signs digest under pub.
func Verify(sig *Signature, digest []byte, pub *PublicKey) bool {
	return ecdsa.Verify(sig, digest, pub)
}

// HashMessage returns the double SHA-256 digest signed by SignMessage.
func HashMessage(msg []byte) [hash.Size]byte {
	return hash.DoubleSum256(msg)
}

// SignMessage signs the double SHA-256 digest of msg with an RFC 6979 nonce.
func SignMessage(key *PrivateKey, msg []byte) (*Signature, error) {
	if key == nil {
		return nil, ecdsa.ErrNilKey
	}
	d := key.D()
	defer secmem.Int(d)
	digest := HashMessage(msg)
	return ecdsa.SignDeterministic(digest[:], d)
}

// VerifyMessage reports whether sig signs the double SHA-256 digest of msg
// under pub.
func VerifyMessage(pub *PublicKey, msg []byte, sig *Signature) bool {
	digest := HashMessage(msg)
	return ecdsa.Verify(sig, digest[:], pub)
}
