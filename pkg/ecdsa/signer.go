package ecdsa

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/coinbase/cb-secp256k1-go/internal/secmem"
	"github.com/coinbase/cb-secp256k1-go/pkg/logging"
	"github.com/coinbase/cb-secp256k1-go/pkg/rfc6979"
	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

// Config holds the collaborators of a Signer. The zero value is usable.
type Config struct {
	// Logger receives debug records for every operation. Nil discards them.
	Logger logging.Logger

	// Rand feeds SignRandom. Nil selects crypto/rand.Reader.
	Rand io.Reader

	// MAC drives deterministic nonce generation. Nil selects
	// rfc6979.HMACSHA256.
	MAC rfc6979.MAC
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	if c.Rand == nil {
		c.Rand = cryptorand.Reader
	}
	if c.MAC == nil {
		c.MAC = rfc6979.HMACSHA256
	}
	return c
}

// Signer signs digests with a fixed private key. A Signer is safe for
// concurrent use as long as the key is not zeroed while it is in use.
type Signer struct {
	key    *PrivateKey
	pub    *PublicKey
	cfg    Config
	logger logging.Logger
}

// NewSigner binds key to cfg. The key is not copied; zeroing it disables the
// Signer.
func NewSigner(key *PrivateKey, cfg Config) (*Signer, error) {
	if key == nil || key.d == nil {
		return nil, ErrNilKey
	}
	cfg = cfg.withDefaults()
	pub := key.PubKey()
	id := pub.Hash160()
	return &Signer{
		key:    key,
		pub:    pub,
		cfg:    cfg,
		logger: cfg.Logger.With("key_id", hex.EncodeToString(id[:])),
	}, nil
}

// PublicKey returns the verification key of the Signer.
func (s *Signer) PublicKey() *PublicKey {
	return s.pub
}

// Sign signs digest with an RFC 6979 nonce. If the nonce is degenerate the
// derivation is repeated with a 32-byte retry counter as additional data, so
// the result stays deterministic. Cancelling ctx aborts the nonce search.
func (s *Signer) Sign(ctx context.Context, digest []byte) (*Signature, error) {
	n := secp256k1.S256().N()

	var extra []byte
	for attempt := int64(0); ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			extra = rfc6979.Int2Octets(big.NewInt(attempt), secp256k1.ByteSize)
		}

		k, err := rfc6979.GenerateKContext(ctx, s.cfg.MAC, n, s.key.d, digest, extra)
		if err != nil {
			s.logger.Warn(ctx, "nonce generation failed", "error", err)
			return nil, fmt.Errorf("ecdsa: generate nonce: %w", err)
		}
		sig, err := Sign(digest, s.key.d, k)
		secmem.Int(k)
		if errors.Is(err, ErrDegenerateNonce) {
			s.logger.Debug(ctx, "degenerate nonce, retrying", "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Debug(ctx, "signed digest",
			"digest_len", len(digest),
			"nonce", "rfc6979",
			logging.Redacted("private_key"),
		)
		return sig, nil
	}
}

// SignRandom signs digest with a nonce drawn from Config.Rand.
func (s *Signer) SignRandom(ctx context.Context, digest []byte) (*Signature, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		k, err := randScalar(s.cfg.Rand)
		if err != nil {
			s.logger.Warn(ctx, "nonce generation failed", "error", err)
			return nil, err
		}
		sig, err := Sign(digest, s.key.d, k)
		secmem.Int(k)
		if errors.Is(err, ErrDegenerateNonce) {
			s.logger.Debug(ctx, "degenerate nonce, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Debug(ctx, "signed digest",
			"digest_len", len(digest),
			"nonce", "random",
			logging.Redacted("private_key"),
		)
		return sig, nil
	}
}

// Verify reports whether sig is valid for digest under the Signer's public
// key.
func (s *Signer) Verify(ctx context.Context, sig *Signature, digest []byte) bool {
	ok := Verify(sig, digest, s.pub)
	s.logger.Debug(ctx, "verified signature", "digest_len", len(digest), "valid", ok)
	return ok
}
