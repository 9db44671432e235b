package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zerolog.Level
	}{
		{
			name:      "defaults to info on empty level",
			cfg:       Config{},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "debug level",
			cfg:       Config{Level: "debug", Format: "console"},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "invalid level falls back to info",
			cfg:       Config{Level: "verbose"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "json format stderr",
			cfg:       Config{Level: "warn", Format: "json", Output: "stderr"},
			wantLevel: zerolog.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewLogger(tt.cfg)
			defer func() { _ = result.Close() }()

			assert.Equal(t, tt.wantLevel, result.Logger.GetLevel())
			assert.False(t, result.FallbackUsed)
		})
	}
}

func TestNewLoggerFileOutput(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ghgfocus.log")
		result := NewLogger(Config{Level: "info", Format: "json", Output: "file", File: path})
		defer func() { _ = result.Close() }()

		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
	})

	t.Run("falls back to stderr when file cannot be opened", func(t *testing.T) {
		result := NewLogger(Config{Output: "file", File: filepath.Join(t.TempDir(), "missing", "x.log")})
		defer func() { _ = result.Close() }()

		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})
}

func TestTraceID(t *testing.T) {
	t.Run("generates ULID when absent", func(t *testing.T) {
		id := GetOrGenerateTraceID(context.Background())
		assert.Len(t, id, 26, "ULIDs are 26 characters")
	})

	t.Run("round-trips through context", func(t *testing.T) {
		ctx := ContextWithTraceID(context.Background(), "trace-123")
		assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
		assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))
	})

	t.Run("missing trace ID is empty", func(t *testing.T) {
		assert.Empty(t, TraceIDFromContext(context.Background()))
	})
}

func TestFromContext(t *testing.T) {
	result := NewLogger(Config{Level: "debug"})
	defer func() { _ = result.Close() }()

	ctx := result.Logger.WithContext(context.Background())
	log := FromContext(ctx)
	require.NotNil(t, log)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}
