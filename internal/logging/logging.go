// Package logging wraps zap for the CLI. Library packages do not log.
package logging

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type loggerCtxKey struct{}

// Logger is a thin wrapper over *zap.Logger.
type Logger struct {
	log *zap.Logger
}

// New builds a console logger writing to w. Verbose enables debug events;
// otherwise debug events are dropped.
func New(w io.Writer, verbose bool, opts ...Option) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return &Logger{log: zap.New(core, opts...)}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{log: zap.NewNop()}
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Nop()
	}
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return Nop()
}

// WithContext stores l in ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}
