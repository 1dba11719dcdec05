package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// No-op until InitLogger runs, so packages and tests can log freely.
var zapLog = zap.NewNop()

var atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func InitLogger(level zapcore.Level) error {

	config := zap.NewDevelopmentConfig()
	atomicLevel.SetLevel(level)
	config.Level = atomicLevel

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000000000")
	encoderConfig.StacktraceKey = "" // to hide stacktrace info
	config.EncoderConfig = encoderConfig

	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	zapLog = built
	return nil
}

// ParseLevel turns NETALIGN_LOG_LEVEL into a zap level, info when unset or unknown.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// SetLevel changes the level of the logger built by InitLogger.
func SetLevel(level zapcore.Level) {
	atomicLevel.SetLevel(level)
}

// Level reports the current level.
func Level() zapcore.Level {
	return atomicLevel.Level()
}

// Use replaces the process logger and returns a func restoring the previous one.
func Use(l *zap.Logger) func() {
	prev := zapLog
	zapLog = l
	return func() { zapLog = prev }
}

// L exposes the underlying logger for middleware that wants its own fields.
func L() *zap.Logger {
	return zapLog
}

func Info(message string, fields ...zap.Field) {
	zapLog.Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	zapLog.Warn(message, fields...)
}

func Debug(message string, fields ...zap.Field) {
	zapLog.Debug(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	zapLog.Error(message, fields...)
}

func Fatal(message string, fields ...zap.Field) {
	zapLog.Fatal(message, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return zapLog.Sync()
}
