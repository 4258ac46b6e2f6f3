// Package logger builds the structured loggers used throughout ignite.
// One base logger, named after the service, is built per open database
// instance and handed to the engine through engine.Config; the other
// subsystems take no logger of their own.
package logger

import "go.uber.org/zap"

// New creates the base logger for a database instance identified by service.
// Production builds use zap's JSON production config; callers that want
// human-readable development output can swap in NewDevelopment themselves
// and pass the result to the engine via engine.Config.
func New(service string) *zap.SugaredLogger {
	base, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails on a broken encoder/sink configuration,
		// which never happens with the default config. Falling back to a nop
		// logger keeps callers from having to handle an error that can't occur
		// in practice.
		base = zap.NewNop()
	}

	return base.Sugar().Named(service)
}

// NewDevelopment creates a development-mode logger with human-readable,
// colorized console output, useful for the cmd/ignitedb driver and tests.
func NewDevelopment(service string) *zap.SugaredLogger {
	base, err := zap.NewDevelopment()
	if err != nil {
		base = zap.NewNop()
	}

	return base.Sugar().Named(service)
}

// Nop returns a logger that discards everything, for tests that don't care
// about log output.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
