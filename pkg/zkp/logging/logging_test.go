package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(slog.New(h)).With("component", "scratch")

	logger.Debug(context.Background(), "scratch space created", "max_size", 100)

	out := buf.String()
	assert.Contains(t, out, "scratch space created")
	assert.Contains(t, out, "component=scratch")
	assert.Contains(t, out, "max_size=100")
}

func TestRedacted(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Info(context.Background(), "tweak loaded", Redacted("tweak"))

	require.Contains(t, buf.String(), "tweak="+Placeholder())
	assert.Equal(t, "[redacted]", Placeholder())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// Must not panic and must stay usable after With.
	logger.With("k", "v").Error(context.Background(), "dropped")
}

func TestNewNilUsesDefault(t *testing.T) {
	require.NotNil(t, New(nil))
}

func TestLevelsReachHandler(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(slog.New(h))
	ctx := context.Background()

	logger.Debug(ctx, "scratch space created")
	logger.Info(ctx, "context randomized")
	logger.Warn(ctx, "scratch space reclaimed by finalizer")
	logger.Error(ctx, "scratch space allocation failed")

	out := buf.String()
	for _, lvl := range []string{"level=DEBUG", "level=INFO", "level=WARN", "level=ERROR"} {
		assert.Contains(t, out, lvl)
	}
}
