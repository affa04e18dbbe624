// Package logging provides a minimal logging facade for the secp256k1-zkp
// wrapper.
//
// The Logger interface wraps the subset of log/slog the wrapper needs, so
// applications can plug in their own implementation for testing, redaction, or
// integration with an existing logging system.
//
// # Default Implementation
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # What the wrapper logs
//
// Scratch-space creation and release are logged at Debug with the arena's
// max_size. A scratch space reclaimed by its finalizer (the caller forgot to
// Close it) is logged at Warn. Hex decoding never logs; rejecting bad input is
// the caller's job.
//
// # Redaction
//
//	logger.Debug(ctx, "tweak loaded", logging.Redacted("tweak"))
//	// Logs: tweak="[redacted]"
//
// Never log blinding factors, secret tweaks or nonces. Native pointers are
// logged only as "present"/"absent", never as addresses.
package logging
