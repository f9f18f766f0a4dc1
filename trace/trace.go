// Package trace provides the solver's runtime-verbosity diagnostics. The
// original C++ implementation gated its logging behind a compile-time
// DEBUG level; here verbosity is an explicit value threaded through the
// driver instead of a process-wide global.
package trace

import (
	"fmt"
	"io"
)

// Level mirrors the original's 0/1/2 DEBUG scale.
type Level int

const (
	// Silent prints nothing.
	Silent Level = 0
	// Info prints the per-clause summary lines.
	Info Level = 1
	// Debug additionally prints the row clause 0 installs. No level prints
	// the intermediate matrices.
	Debug Level = 2
)

// Tracer carries the destination and verbosity a run should log at.
type Tracer struct {
	w     io.Writer
	level Level
}

// New constructs a Tracer writing to w at the given level.
func New(w io.Writer, level Level) *Tracer {
	return &Tracer{w: w, level: level}
}

// Infof logs at Info level or above.
func (t *Tracer) Infof(format string, a ...any) {
	t.logf(Info, format, a...)
}

// Debugf logs at Debug level only.
func (t *Tracer) Debugf(format string, a ...any) {
	t.logf(Debug, format, a...)
}

func (t *Tracer) logf(at Level, format string, a ...any) {
	if t == nil || t.w == nil || t.level < at {
		return
	}
	fmt.Fprintf(t.w, format, a...)
}
