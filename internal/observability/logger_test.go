package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xqrs/gridview/internal/config"
)

func TestNewLoggerWithoutFileIsNop(t *testing.T) {
	logger, closeFn, err := NewLogger(config.LoggerConfig{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	assert.NoError(t, closeFn())
}

func TestNewLoggerWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithWriter(config.LoggerConfig{
		Level:       "info",
		Format:      "json",
		ServiceName: "griddemo",
	}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("recompute", zap.Int("slots", 33))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "griddemo", record["logger"])
	assert.Equal(t, "recompute", record["msg"])
	assert.EqualValues(t, 33, record["slots"])
}

func TestNewLoggerWithWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithWriter(config.LoggerConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("frame", zap.Uint64("frame", 2))
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "frame")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := NewLoggerWithWriter(config.LoggerConfig{Level: "chatty"}, zapcore.AddSync(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "griddemo.log")
	logger, closeFn, err := NewLogger(config.LoggerConfig{
		Level:   "info",
		Format:  "json",
		LogFile: path,
		MaxSize: 1,
	})
	require.NoError(t, err)

	logger.Info("started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
}
