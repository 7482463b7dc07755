package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/config"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := Setup(config.ServerConfig{Port: 3003, LogLevel: level})
		require.NoError(t, err)
		assert.NotNil(t, log)
	}

	// Unknown levels fall back to info instead of failing startup.
	log, err := Setup(config.ServerConfig{Port: 3003, LogLevel: "loud"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestContextPropagation(t *testing.T) {
	t.Parallel()

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), custom)

	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, custom, FromContextOrDefault(ctx, nil))

	// Without a logger in context the fallbacks apply.
	def := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	assert.NotNil(t, FromContext(context.Background()))
}
