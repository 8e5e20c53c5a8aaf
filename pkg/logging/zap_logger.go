package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger writes structured entries through a zap.Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds a ZapLogger from zap's production
// configuration. When verbose is true, debug entries are
// emitted as well.
func NewZapLogger(verbose bool) (*ZapLogger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewZapLoggerFrom(logger), nil
}

// NewZapLoggerFrom wraps an existing zap.Logger.
func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// Info logs an informational message.
func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.logger.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning message.
func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.logger.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message.
func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.logger.Error(msg, toZapFields(fields)...)
}

// Debug logs a debug message.
func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.logger.Debug(msg, toZapFields(fields)...)
}

// WithFields returns a child logger carrying fields.
func (z *ZapLogger) WithFields(fields ...Field) Logger {
	return &ZapLogger{logger: z.logger.With(toZapFields(fields)...)}
}

// Close flushes buffered entries.
func (z *ZapLogger) Close() error {
	return z.logger.Sync()
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}
