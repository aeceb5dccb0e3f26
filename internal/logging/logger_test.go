package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		debug bool
		want  zapcore.Level
	}{
		{name: "info", level: "INFO", want: zapcore.InfoLevel},
		{name: "lowercase debug", level: "debug", want: zapcore.DebugLevel},
		{name: "warn", level: "WARN", want: zapcore.WarnLevel},
		{name: "warning alias", level: "WARNING", want: zapcore.WarnLevel},
		{name: "error", level: "ERROR", want: zapcore.ErrorLevel},
		{name: "unknown falls back to info", level: "TRACE", want: zapcore.InfoLevel},
		{name: "empty falls back to info", level: "", want: zapcore.InfoLevel},
		{name: "debug mode wins", level: "ERROR", debug: true, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level, tt.debug))
		})
	}
}

func TestNewBuildsLogger(t *testing.T) {
	logger, err := New("INFO", false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	debugLogger, err := New("INFO", true)
	require.NoError(t, err)
	assert.True(t, debugLogger.Core().Enabled(zapcore.DebugLevel))
}
