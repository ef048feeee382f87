// Package logger provides the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the logger. Zero values fall back to info level on
// stdout.
type Options struct {
	Level    string // debug, info, warn, error
	Format   string // json, console
	Output   string // stdout, file
	FilePath string
}

var (
	log       *zap.Logger
	atomLevel zap.AtomicLevel
)

// Init builds the package logger. env selects the default encoder:
// console for development, JSON otherwise.
func Init(opts Options, env string) error {
	atomLevel = zap.NewAtomicLevelAt(parseLevel(opts.Level))

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		if env == "development" || env == "dev" {
			encoder = zapcore.NewConsoleEncoder(encoderConfig)
		} else {
			encoder = zapcore.NewJSONEncoder(encoderConfig)
		}
	}

	var writeSyncer zapcore.WriteSyncer
	switch opts.Output {
	case "file":
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		writeSyncer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		})
	default:
		writeSyncer = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(encoder, writeSyncer, atomLevel)
	log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the underlying logger, which may be nil before Init.
func Get() *zap.Logger { return log }

// Sync flushes buffered log entries. Errors from syncing terminal
// devices are ignored.
func Sync() error {
	if log == nil {
		return nil
	}
	if err := log.Sync(); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "inappropriate ioctl for device") &&
			!strings.Contains(msg, "invalid argument") &&
			!strings.Contains(msg, "bad file descriptor") {
			return err
		}
	}
	return nil
}

// With returns a child logger with the given fields. Safe before Init.
func With(fields ...zap.Field) *zap.Logger {
	if log != nil {
		return log.With(fields...)
	}
	return zap.NewNop()
}

// WithRequestID returns a child logger tagged with the request id.
func WithRequestID(requestID string) *zap.Logger {
	return With(zap.String("request_id", requestID))
}

func Debug(msg string, fields ...zap.Field) {
	if log != nil {
		log.Debug(msg, fields...)
	}
}

func Info(msg string, fields ...zap.Field) {
	if log != nil {
		log.Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if log != nil {
		log.Warn(msg, fields...)
	}
}

func Error(msg string, fields ...zap.Field) {
	if log != nil {
		log.Error(msg, fields...)
	}
}

func Fatal(msg string, fields ...zap.Field) {
	if log != nil {
		log.Fatal(msg, fields...)
	}
}
