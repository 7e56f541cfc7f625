package main

import (
	"encoding/hex"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v2"

	"github.com/coinbase/cb-secp256k1-go/pkg/k1"
)

// keyFlag is built per command: urfave/cli writes values found in the
// environment back into the flag.
func keyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "key",
		Usage:   "private key as 64 hex characters",
		EnvVars: []string{"K1SIG_PRIVATE_KEY"},
	}
}

func genKeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "genkey",
		Usage: "generate a private key and print it with its public key",
		Action: func(cctx *cli.Context) error {
			key, err := k1.GeneratePrivateKey(nil)
			if err != nil {
				return err
			}
			defer key.Zero()

			fmt.Fprintf(cctx.App.Writer, "private:      %s\n", hex.EncodeToString(key.Serialize()))
			printPubKey(cctx.App.Writer, key.PubKey())
			return nil
		},
	}
}

func pubKeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "pubkey",
		Usage: "derive the public key and its hash160 from a private key",
		Flags: []cli.Flag{keyFlag()},
		Action: func(cctx *cli.Context) error {
			key, err := loadKey(cctx)
			if err != nil {
				return err
			}
			defer key.Zero()

			printPubKey(cctx.App.Writer, key.PubKey())
			return nil
		},
	}
}

func loadKey(cctx *cli.Context) (*k1.PrivateKey, error) {
	raw, err := decodeHex("key", cctx.String("key"))
	if err != nil {
		return nil, err
	}
	return k1.PrivKeyFromBytes(raw)
}

func printPubKey(w io.Writer, pub *k1.PublicKey) {
	id := pub.Hash160()
	fmt.Fprintf(w, "compressed:   %s\n", hex.EncodeToString(pub.SerializeCompressed()))
	fmt.Fprintf(w, "uncompressed: %s\n", hex.EncodeToString(pub.SerializeUncompressed()))
	fmt.Fprintf(w, "hash160:      %s\n", hex.EncodeToString(id[:]))
}
