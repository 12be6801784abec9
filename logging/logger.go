package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelEnv overrides the configured log level when set.
const LevelEnv = "SANE_OPTGEN_LOG_LEVEL"

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn or error
	Format string    // console or json
	File   string    // optional rotating log file
	Writer io.Writer // console sink, os.Stderr when nil
}

// New creates a logger writing to Options.Writer and, when File is set, to a
// rotating file. The returned func flushes and closes the sinks.
func New(opts Options) (*zap.Logger, func(), error) {
	levelStr := opts.Level
	if env := os.Getenv(LevelEnv); env != "" {
		levelStr = env
	}
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.TimeKey = ""
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(w), level)}

	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    2, // megabytes
			MaxBackups: 5,
			MaxAge:     15, // days
			Compress:   true,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), zapcore.DebugLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, func() {
		_ = logger.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}, nil
}

// ParseLevel maps a case-insensitive level name to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
}
