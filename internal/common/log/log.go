// Package log wraps zap behind the small surface the rest of the
// application uses: package level leveled logging that picks up the
// correlation id carried on the context.
package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type correlationIDKey struct{}

var base = zap.NewNop()

type options struct {
	level zapcore.Level
	env   string
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(strings.ToLower(level)); err == nil {
			o.level = l
		}
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

// Init replaces the global logger. Call once from setup before anything logs.
func Init(appName string, opts ...Option) {
	fOpts := &options{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(fOpts)
	}

	cfg := zap.NewProductionConfig()
	if fOpts.env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(fOpts.level)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	base = logger.Named(appName)
}

// InitForTest installs a no-op logger so package tests stay quiet.
func InitForTest() {
	base = zap.NewNop()
}

func Sync() {
	_ = base.Sync()
}

// Logger exposes the underlying zap logger for integrations that need it.
func Logger() *zap.Logger {
	return base
}

// ContextWithCorrelationID stores the correlation id used to stitch log
// lines of one request or job run together.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

func fromContext(ctx context.Context) *zap.Logger {
	if id := CorrelationID(ctx); id != "" {
		return base.With(zap.String("correlationId", id))
	}
	return base
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Error(msg, fields...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Sugar().Fatalf(format, args...)
}
