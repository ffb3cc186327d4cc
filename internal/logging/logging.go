// Package logging builds the application logger. The terminal belongs to the
// UI, so records only go to a rotating file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/llehouerou/timetable/internal/config"
)

// New returns a JSON file logger for cfg, or a no-op logger when no file is
// configured. The returned close function flushes and closes the file.
func New(cfg config.LogConfig) (*zap.Logger, func() error) {
	if cfg.File == "" {
		return zap.NewNop(), func() error { return nil }
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return NewWithWriter(zapcore.AddSync(writer), level), func() error {
		return writer.Close()
	}
}

// NewWithWriter returns a JSON logger writing to w at level.
func NewWithWriter(w zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), w, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("timetable")
}
