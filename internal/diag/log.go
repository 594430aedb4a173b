// File: internal/diag/log.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package diag

import (
	"log"
	"os"
)

// Logger is a minimal wrapper around the standard library logger,
// prefixed per component, used only by cmd/ entry points.
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing to stderr, tagged with component.
func New(component string) *Logger {
	return &Logger{l: log.New(os.Stderr, "["+component+"] ", log.LstdFlags)}
}

func (lg *Logger) Printf(format string, args ...any) {
	lg.l.Printf(format, args...)
}

func (lg *Logger) Fatalf(format string, args ...any) {
	lg.l.Fatalf(format, args...)
}
