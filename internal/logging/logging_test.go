package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/llehouerou/timetable/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	logger, closeFn := New(config.LogConfig{})
	assert.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	assert.NoError(t, closeFn())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.log")
	logger, closeFn := New(config.LogConfig{File: path, Level: "debug", MaxSizeMB: 1, MaxBackups: 1})

	logger.Debug("page published", zap.Float64("page", 12.5))
	require.NoError(t, logger.Sync())
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "page published", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "timetable", record["logger"])
	assert.InDelta(t, 12.5, record["page"], 0)
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(zapcore.AddSync(&buf), zap.InfoLevel)
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
