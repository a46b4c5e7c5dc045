package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLogger pairs a logger with its observed entries for assertions.
type TestLogger struct {
	Logger   *zap.Logger
	Observed *observer.ObservedLogs
}

// NewTestLogger creates an observing logger for tests.
func NewTestLogger() *TestLogger {
	core, observed := observer.New(zapcore.DebugLevel)
	return &TestLogger{
		Logger:   zap.New(core),
		Observed: observed,
	}
}
