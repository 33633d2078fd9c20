package observability_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := observability.NewLogger(config.LoggerConfig{Level: "debug", Format: "json", ServiceName: "test"}, zapcore.AddSync(buf))

	logger.Debug("solved", zap.Float64("value", 80))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "test", entry["logger"])
	assert.Equal(t, "solved", entry["msg"])
	assert.Equal(t, 80.0, entry["value"])
}

func TestNewLogger_LevelFilter(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := observability.NewLogger(config.LoggerConfig{Level: "nonsense", Format: "console"}, zapcore.AddSync(buf))

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden", "bad level falls back to info")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knapsack.log")
	logger := observability.NewLogger(config.LoggerConfig{Level: "info", Format: "console", LogFile: path, MaxSize: 1}, zapcore.AddSync(new(bytes.Buffer)))

	logger.Info("to file")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}
