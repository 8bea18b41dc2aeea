// Package log provides the leveled, structured logger shared by the ladder
// packages and the command line.
package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of a sugared zap logger the packages depend on.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// Log adapts a *zap.SugaredLogger to Logger.
type Log struct {
	zapLogger *zap.SugaredLogger
}

// *Log implements Logger
var _ Logger = &Log{}

// NewProductionLogger builds a console logger writing to stderr at the given
// verbosity (debug, info, warn or error).
func NewProductionLogger(verbosity string) (*Log, error) {
	logLevel, err := zapcore.ParseLevel(verbosity)
	if err != nil {
		return nil, fmt.Errorf("cannot parse verbosity %q: %w", verbosity, err)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.Encoding = "console"
	logConfig.OutputPaths = []string{"stderr"}
	// Timestamp format (ISO8601) and time zone (UTC)
	logConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z0700"))
	}
	logConfig.Level.SetLevel(logLevel)

	logger, err := logConfig.Build()
	if err != nil {
		return nil, err
	}

	return NewLogger(logger.Sugar()), nil
}

// NewLogger wraps an existing sugared logger.
func NewLogger(zapLogger *zap.SugaredLogger) *Log {
	return &Log{zapLogger: zapLogger}
}

func (l *Log) Debugw(msg string, args ...any) {
	l.zapLogger.Debugw(msg, args...)
}

func (l *Log) Infow(msg string, args ...any) {
	l.zapLogger.Infow(msg, args...)
}

func (l *Log) Warnw(msg string, args ...any) {
	l.zapLogger.Warnw(msg, args...)
}

func (l *Log) Errorw(msg string, args ...any) {
	l.zapLogger.Errorw(msg, args...)
}

// Sync flushes buffered log entries.
func (l *Log) Sync() error {
	return l.zapLogger.Sync()
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}
