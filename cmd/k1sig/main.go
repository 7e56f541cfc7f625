// Command k1sig is a debugging tool for secp256k1 keys and ECDSA signatures.
//
//	k1sig genkey
//	k1sig pubkey --key <hex>
//	k1sig sign --key <hex> --message "hello"
//	k1sig verify --pubkey <hex> --sig <der hex> --message "hello"
//
// Private keys may also be passed through K1SIG_PRIVATE_KEY.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	cli "github.com/urfave/cli/v2"

	"github.com/coinbase/cb-secp256k1-go/pkg/k1"
	"github.com/coinbase/cb-secp256k1-go/pkg/logging"
)

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "k1sig"
	app.Usage = "inspect secp256k1 keys and ECDSA signatures"
	app.Version = k1.BuildString()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "warn",
			EnvVars: []string{"K1SIG_LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		versionCommand(),
		genKeyCommand(),
		pubKeyCommand(),
		signCommand(),
		verifyCommand(),
	}
	return app
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the module version",
		Action: func(cctx *cli.Context) error {
			fmt.Fprintln(cctx.App.Writer, k1.BuildString())
			return nil
		},
	}
}

// newLogger builds the slog text logger on stderr at the level selected by
// --log-level.
func newLogger(cctx *cli.Context) (logging.Logger, error) {
	name := cctx.String("log-level")
	level, ok := logging.ParseLevel(name)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", name)
	}
	handler := slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level})
	return logging.New(slog.New(handler)), nil
}

var errNoHex = errors.New("empty hex argument")

func decodeHex(flag, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("--%s: %w", flag, errNoHex)
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return b, nil
}
