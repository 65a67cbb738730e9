// Package logging provides the leveled logging collaborator injected into
// the inventory ledger. The ledger only specifies which events produce which
// severity; the destination and format belong here.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the minimal leveled interface the ledger logs through.
// Fields are alternating key/value pairs.
type Logger interface {
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// New creates a console Logger writing to stderr at the given level
// ("debug", "info", "warn" or "error"), with ISO-8601 timestamps.
func New(level string) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)
	return &zapLogger{s: zap.New(core).Sugar()}, nil
}

// Nop returns a Logger that discards every record.
func Nop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func (l *zapLogger) Info(msg string, fields ...any)  { l.s.Infow(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...any)  { l.s.Warnw(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...any) { l.s.Errorw(msg, fields...) }

// ParseLevel parses a log level string.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %q", level)
	}
}
