package logger

import (
	"bytes"
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"contenthub/internal/app/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name           string
		env            string
		expectedLevel  slog.Level
		expectedPretty bool
	}{
		{
			name:           "local environment",
			env:            config.EnvLocal,
			expectedLevel:  slog.LevelDebug,
			expectedPretty: true,
		},
		{
			name:           "prod environment",
			env:            config.EnvProd,
			expectedLevel:  slog.LevelInfo,
			expectedPretty: false,
		},
		{
			name:           "unknown environment",
			env:            "staging",
			expectedLevel:  slog.LevelInfo,
			expectedPretty: false,
		},
		{
			name:           "dev environment",
			env:            config.EnvDev,
			expectedLevel:  slog.LevelDebug,
			expectedPretty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= 0, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(config.EnvDev, &buf)

	log.Debug("catalog seeded", "count", 3)

	out := buf.String()
	assert.Contains(t, out, `"msg":"catalog seeded"`)
	assert.Contains(t, out, `"count":3`)
}

func TestNewLoggerLevels(t *testing.T) {
	ctx := context.Background()

	// Prod - только INFO и выше
	prodLogger := New(config.EnvProd)
	assert.False(t, prodLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, prodLogger.Enabled(ctx, slog.LevelInfo))

	// Dev - DEBUG и выше
	devLogger := New(config.EnvDev)
	assert.True(t, devLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, devLogger.Enabled(ctx, slog.LevelInfo))

	// Local - DEBUG (pretty)
	localLogger := New(config.EnvLocal)
	assert.True(t, localLogger.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.With("component", "content_service").Info("content item created", "item_id", "42")

	out := buf.String()
	assert.Contains(t, out, "content item created")
	assert.Contains(t, out, `"component": "content_service"`)
	assert.Contains(t, out, `"item_id": "42"`)
}

func TestPrettyHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Debug("hidden")
	assert.Empty(t, buf.String())
}
