package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process wide logger. It discards everything until one of
// the Init functions is called.
var Logger = zap.NewNop()

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Stringer = zap.Stringer
)

func ErrorField(err error) Field {
	return zap.Error(err)
}

// Init configures Logger from the given level (zap level names) and
// format ("text" or "json").
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "text", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	Logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	Logger.Fatal(msg, fields...)
}
