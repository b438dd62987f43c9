package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"entrypoint/internal/types"
)

// ZapLogger implements the Logger interface on top of go.uber.org/zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() *types.LoggerConfig {
	return &types.LoggerConfig{
		Level:           "info",
		Format:          "console",
		Output:          "stdout",
		TimestampFormat: "2006-01-02 15:04:05.000",
		ShowCaller:      false,
	}
}

// New creates a new ZapLogger with the specified log level
func New(level string) *ZapLogger {
	config := DefaultConfig()
	config.Level = level
	return NewWithConfig(config)
}

func NewWithConfig(config *types.LoggerConfig) *ZapLogger {
	var ws zapcore.WriteSyncer
	switch config.Output {
	case "stderr":
		ws = zapcore.Lock(os.Stderr)
	default:
		ws = zapcore.Lock(os.Stdout)
	}
	return newWithSyncer(config, ws)
}

// NewWithWriter creates a logger writing to the given writer (useful for tests)
func NewWithWriter(w io.Writer, level string) *ZapLogger {
	config := DefaultConfig()
	config.Level = level
	return newWithSyncer(config, zapcore.AddSync(w))
}

func newWithSyncer(config *types.LoggerConfig, ws zapcore.WriteSyncer) *ZapLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(config.TimestampFormat)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if config.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, ws, ParseLogLevel(config.Level))

	var opts []zap.Option
	if config.ShowCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &ZapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugf(msg, args...)
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infof(msg, args...)
}

// Warn logs a warning message
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnf(msg, args...)
}

// Error logs an error message
func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorf(msg, args...)
}

// Fatal logs a fatal message and exits the program
func (l *ZapLogger) Fatal(msg string, args ...any) {
	l.sugar.Fatalf(msg, args...)
}

// WithField returns a new logger with an additional field
func (l *ZapLogger) WithField(key string, value any) Logger {
	return &ZapLogger{sugar: l.sugar.With(key, value)}
}

// WithFields returns a new logger with additional fields
func (l *ZapLogger) WithFields(fields map[string]any) Logger {
	kv := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return &ZapLogger{sugar: l.sugar.With(kv...)}
}

// Sync flushes any buffered log entries
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
