// Package observability builds the zap logger of griddemo. The terminal is
// owned by the UI, so records go to a rotating file or nowhere.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/xqrs/gridview/internal/config"
)

// NewLogger returns a logger writing to cfg.LogFile with rotation. An empty
// LogFile yields a no-op logger. The returned close function flushes and
// releases the file.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	logger, err := NewLoggerWithWriter(cfg, zapcore.AddSync(file))
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		_ = logger.Sync()
		return file.Close()
	}
	return logger, closeFn, nil
}

// NewLoggerWithWriter returns a logger writing to w.
func NewLoggerWithWriter(cfg config.LoggerConfig, w zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	core := zapcore.NewCore(encoder(cfg.Format), w, zap.NewAtomicLevelAt(level))
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
	if cfg.ServiceName != "" {
		logger = logger.Named(cfg.ServiceName)
	}
	return logger, nil
}

func encoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}
