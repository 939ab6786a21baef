package litequery

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

// ParseLogLevel accepts "dev"/"development" and "prod"/"production".
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "dev", "development":
		return LogLevelDev, nil
	case "prod", "production":
		return LogLevelProd, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidArgument, s)
	}
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// zapLogger tags every message with its level so the tag survives encoders
// that drop the level field.
type zapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger builds a Logger on zap's development (console, debug and up)
// or production (JSON, info and up) preset.
func NewZapLogger(level LogLevel) (Logger, error) {
	var cfg zap.Config
	switch level {
	case LogLevelDev:
		cfg = zap.NewDevelopmentConfig()
	case LogLevelProd:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("%w: log level %d is neither LogLevelDev nor LogLevelProd", ErrInvalidArgument, level)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}
	return ZapLogger(l), nil
}

// ZapLogger wraps an existing zap logger.
func ZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l.Sugar()}
}

func nopLogger() Logger {
	return ZapLogger(zap.NewNop())
}

func tagged(tag, format string) string {
	return "[" + tag + "] " + format
}

func (z *zapLogger) Debugf(format string, args ...any) { z.l.Debugf(tagged("debug", format), args...) }
func (z *zapLogger) Infof(format string, args ...any)  { z.l.Infof(tagged("info", format), args...) }
func (z *zapLogger) Warnf(format string, args ...any)  { z.l.Warnf(tagged("warn", format), args...) }
func (z *zapLogger) Errorf(format string, args ...any) { z.l.Errorf(tagged("error", format), args...) }
