// Package logging provides the small logging facade used by the signing
// layer of cb-secp256k1-go.
//
// The arithmetic packages (field, curve, secp256k1, rfc6979) never log. Only
// ecdsa.Signer and the k1sig debugging tool emit records, and they do so
// through the Logger interface defined here so applications can route output
// into their own slog handler or drop it entirely.
//
// # Default Implementation
//
//	// Bind to slog.Default()
//	logger := logging.New(nil)
//
//	// Bind to a custom handler
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
//	// Drop everything
//	logger = logging.Discard()
//
// # Redaction
//
// Private scalars and nonces must never reach a log sink. Use Redacted to
// record that a value exists without recording the value:
//
//	logger.Debug(ctx, "signing digest", logging.Redacted("private_key"))
//	// Logs: private_key="[redacted]"
//
// The internalcheck package enforces the companion rule that the crypto
// packages never format values with %x.
package logging
