package zkp

import "github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/logging"

// Config carries the optional knobs for resources created by this package.
// The zero value is valid.
type Config struct {
	// Logger receives lifecycle records (Debug) and leak reports (Warn).
	// Nil binds to slog.Default().
	Logger logging.Logger
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
