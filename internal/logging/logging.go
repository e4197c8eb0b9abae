// Package logging builds the zap loggers used across the surfaces. The
// one-shot CLI logs to stderr in console form; the interactive UI logs
// JSON to a file, since it owns the terminal while running.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger. A non-empty logFile selects the JSON file sink;
// otherwise entries go to stderr in console form. Verbose lowers the
// level to debug.
func New(verbose bool, logFile string) (*zap.Logger, error) {
	if logFile != "" {
		return newFileLogger(verbose, logFile)
	}
	return newConsoleLogger(verbose)
}

// newConsoleLogger builds the stderr console logger for CLI runs.
func newConsoleLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level(verbose))
	config.DisableStacktrace = true

	return config.Build()
}

// newFileLogger builds the JSON file logger for interactive runs.
func newFileLogger(verbose bool, path string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Level = zap.NewAtomicLevelAt(level(verbose))
	config.Encoding = "json"
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
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

	return config.Build()
}

func level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Sync flushes buffered entries before exit. Safe on a nil logger and
// safe to call more than once.
func Sync(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}
	return logger.Sync()
}
