package calculation

import (
	"fmt"
	"os"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StderrLogger writes leveled lines to stderr. The CLI installs one when
// verbose output is requested; Debugf lines are emitted only when Debug is
// set.
type StderrLogger struct {
	Debug bool
}

func (l StderrLogger) Debugf(format string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
	}
}

func (l StderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}

func (l StderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}

func (l StderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}
