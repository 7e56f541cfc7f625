package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/coinbase/cb-secp256k1-go/pkg/k1"
	"github.com/coinbase/cb-secp256k1-go/pkg/secp256k1"
)

var errInvalidSignature = errors.New("invalid signature")

func payloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "message",
			Usage: "message to hash with double SHA-256",
		},
		&cli.StringFlag{
			Name:  "digest",
			Usage: "32-byte digest as hex, used as is",
		},
	}
}

// loadDigest returns the digest selected by exactly one of --message and
// --digest.
func loadDigest(cctx *cli.Context) ([]byte, error) {
	hasMsg, hasDigest := cctx.IsSet("message"), cctx.IsSet("digest")
	switch {
	case hasMsg && hasDigest:
		return nil, errors.New("--message and --digest are mutually exclusive")
	case hasMsg:
		d := k1.HashMessage([]byte(cctx.String("message")))
		return d[:], nil
	case hasDigest:
		d, err := decodeHex("digest", cctx.String("digest"))
		if err != nil {
			return nil, err
		}
		if len(d) != secp256k1.ByteSize {
			return nil, fmt.Errorf("--digest: want %d bytes, got %d", secp256k1.ByteSize, len(d))
		}
		return d, nil
	default:
		return nil, errors.New("one of --message or --digest is required")
	}
}

func signCommand() *cli.Command {
	flags := []cli.Flag{
		keyFlag(),
		&cli.BoolFlag{
			Name:  "random",
			Usage: "draw the nonce from crypto/rand instead of RFC 6979",
		},
	}
	return &cli.Command{
		Name:  "sign",
		Usage: "sign a message or digest and print the DER signature",
		Flags: append(flags, payloadFlags()...),
		Action: func(cctx *cli.Context) error {
			logger, err := newLogger(cctx)
			if err != nil {
				return err
			}
			key, err := loadKey(cctx)
			if err != nil {
				return err
			}
			defer key.Zero()
			digest, err := loadDigest(cctx)
			if err != nil {
				return err
			}

			signer, err := k1.NewSigner(key, k1.SignerConfig{Logger: logger})
			if err != nil {
				return err
			}
			var sig *k1.Signature
			if cctx.Bool("random") {
				sig, err = signer.SignRandom(cctx.Context, digest)
			} else {
				sig, err = signer.Sign(cctx.Context, digest)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cctx.App.Writer, hex.EncodeToString(sig.Serialize()))
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "pubkey",
			Usage: "SEC 1 public key as hex, compressed or uncompressed",
		},
		&cli.StringFlag{
			Name:  "sig",
			Usage: "DER signature as hex",
		},
	}
	return &cli.Command{
		Name:  "verify",
		Usage: "check a DER signature against a public key",
		Flags: append(flags, payloadFlags()...),
		Action: func(cctx *cli.Context) error {
			logger, err := newLogger(cctx)
			if err != nil {
				return err
			}
			rawPub, err := decodeHex("pubkey", cctx.String("pubkey"))
			if err != nil {
				return err
			}
			pub, err := k1.ParsePubKey(rawPub)
			if err != nil {
				return err
			}
			rawSig, err := decodeHex("sig", cctx.String("sig"))
			if err != nil {
				return err
			}
			sig, err := k1.ParseDERSignature(rawSig)
			if err != nil {
				return err
			}
			digest, err := loadDigest(cctx)
			if err != nil {
				return err
			}

			ok := k1.Verify(sig, digest, pub)
			logger.Debug(cctx.Context, "verified signature", "valid", ok)
			if !ok {
				return errInvalidSignature
			}
			fmt.Fprintln(cctx.App.Writer, "valid")
			return nil
		},
	}
}
