// Package obslog is a thin zap wrapper used by the CLI to report
// parse/validation failures and run summaries. The core engine
// package never imports this: it is a pure function of its inputs and
// never logs.
package obslog

import (
	"go.uber.org/zap"
)

// Logger wraps a zap.SugaredLogger for call-site brevity.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a production logger writing structured JSON to stderr, or a
// development logger with human-readable console output when dev is true.
func New(dev bool) (*Logger, error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: base.Sugar()}, nil
}

// Nop returns a Logger that discards everything, for tests and library
// callers that don't want obslog's output.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// ParseFailure logs a fatal ParseError/ValidationError occurrence with the
// file it came from.
func (l *Logger) ParseFailure(file string, err error) {
	l.Errorw("model file rejected", "file", file, "error", err)
}

// RunSummary logs a completed Search's verdict and counters.
func (l *Logger) RunSummary(file string, verdict string, visited, frontier int, cancelled bool) {
	l.Infow("run complete",
		"file", file,
		"verdict", verdict,
		"visited", visited,
		"max_frontier", frontier,
		"cancelled", cancelled,
	)
}
