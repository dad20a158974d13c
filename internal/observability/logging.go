package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shopfront-labs/storefront/internal/config"
)

// NewLogger creates a structured zap.Logger configured via env settings.
// Every entry carries the service name, version and environment so lines
// from several storefront instances can be told apart.
func NewLogger(cfg config.LoggerConfig, app config.AppConfig, opts ...zap.Option) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: level == zapcore.DebugLevel,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:    "message",
			LevelKey:      "level",
			TimeKey:       "ts",
			NameKey:       "logger",
			CallerKey:     "caller",
			StacktraceKey: "stacktrace",
			EncodeLevel:   zapcore.LowercaseLevelEncoder,
			EncodeTime:    zapcore.ISO8601TimeEncoder,
			EncodeCaller:  zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	return logger.With(ServiceFields(app)...), nil
}

// ServiceFields identifies this process in every log entry.
func ServiceFields(app config.AppConfig) []zap.Field {
	name := app.Name
	if name == "" {
		name = "storefront"
	}
	fields := []zap.Field{zap.String("service", name)}
	if app.Version != "" {
		fields = append(fields, zap.String("version", app.Version))
	}
	if app.Env != "" {
		fields = append(fields, zap.String("env", app.Env))
	}
	return fields
}
