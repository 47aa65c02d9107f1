// Package obslog provides the structured logging wrapper used at the
// runtime adapter boundary. It is never imported by the pure core
// packages (domain, codec, protocol, validator) — only by internal/runtime;
// cmd/acplint and internal/cliapp do not log through it.
package obslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with the handful of helpers the adapter and CLI
// need: logging a gating decision, a decode error, or a transport event.
type Logger struct {
	zap *zap.Logger
}

// Config selects the logger's verbosity and encoding.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// New builds a Logger from Config. An empty Config yields an info-level,
// console-encoded logger writing to stderr.
func New(cfg Config) (*Logger, error) {
	level := parseLevel(nonEmpty(cfg.Level, "info"))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	var encoder zapcore.Encoder
	if nonEmpty(cfg.Format, "console") == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), level)
	return &Logger{zap: zap.New(core)}, nil
}

// Noop returns a Logger that discards everything, for tests and for
// embedders that never opted into a *Logger on runtime.Config.
func Noop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// With returns a child logger carrying the given structured fields on
// every subsequent call.
func (l *Logger) With(fields ...zap.Field) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zap: l.zap.With(fields...)}
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.zap.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.zap.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.zap.Error(msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.zap.Debug(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zap.Sync()
}
