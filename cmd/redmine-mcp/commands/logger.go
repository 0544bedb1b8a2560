package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// StderrLogger writes leveled log lines to stderr. stdout is reserved for
// the MCP stream, so all diagnostics must stay off it.
type StderrLogger struct {
	debug bool
}

// NewStderrLogger creates a logger; debug messages are dropped unless
// debug is true.
func NewStderrLogger(debug bool) *StderrLogger {
	return &StderrLogger{debug: debug}
}

// Debug logs a debug message when debug logging is enabled.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.debug {
		return
	}

	l.write("DEBUG", msg, fields)
}

// Info logs an informational message.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.write("INFO", msg, fields)
}

// Warn logs a warning message.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, fields)
}

// Error logs an error message.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.write("ERROR", msg, fields)
}

func (l *StderrLogger) write(level, msg string, fields map[string]interface{}) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s] %s", level, msg)

	// Sorted so log lines are stable for a given call site.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}

	fmt.Fprintln(os.Stderr, sb.String())
}
