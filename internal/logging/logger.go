package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CATALOG_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output instead of stderr.
// The interactive UI owns the terminal, so it only logs when this is set.
const LogFileEnvVar = "CATALOG_LOG_FILE"

// ParseLevel maps a level name to a zap level. Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates the global logger.
// An empty level falls back to CATALOG_LOG_LEVEL and an empty path to
// CATALOG_LOG_FILE. With no level at all, logging is disabled. With no path,
// entries go to stderr.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if path != "" {
		output = path
		// No ANSI escapes in files
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from CATALOG_LOG_LEVEL and
// CATALOG_LOG_FILE. Silent unless the level is set.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// InitializeForUI is InitializeFromEnv for the full-screen interface: without
// a log file, output would corrupt the screen, so logging stays silent.
func InitializeForUI() error {
	if os.Getenv(LogFileEnvVar) == "" {
		logger = zap.NewNop()
		return nil
	}
	return InitializeFromEnv()
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogProductSaved records a create or edit.
func LogProductSaved(id int64, name string, created bool) {
	action := "updated"
	if created {
		action = "created"
	}
	Info("Product saved",
		zap.Int64("id", id),
		zap.String("name", name),
		zap.String("action", action),
	)
}

// LogSearch records a debounced query being applied.
func LogSearch(query string, matches int) {
	Debug("Search applied",
		zap.String("query", query),
		zap.Int("matches", matches),
	)
}

// LogPageChange records navigation between pages.
func LogPageChange(from, to, total int) {
	Debug("Page changed",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("total_pages", total),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
