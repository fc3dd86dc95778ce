// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable, following the conventions of the npm debug package.
//
// Each logger owns a namespace such as "cli:release" or "dispatch:client".
// DEBUG holds a comma-separated list of patterns where a trailing "*"
// matches any suffix and a leading "-" excludes matching namespaces:
//
//	DEBUG=*                        enable everything
//	DEBUG=dispatch:*               enable the dispatch namespace
//	DEBUG=dispatch:*,cli:*         enable multiple namespaces
//	DEBUG=*,-cli:spinner           enable everything except cli:spinner
//
// Output goes to stderr as "namespace message +elapsed" where elapsed is
// the time since the previous message on the same logger.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	last time.Time
}

// New creates a logger for the given namespace. Whether the logger is
// enabled is decided once, from the DEBUG variable at creation time.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   enabled(namespace, os.Getenv("DEBUG")),
	}
}

// Enabled reports whether messages on this logger are emitted. Callers can
// use it to skip building expensive debug output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Print emits a message built like fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

// Printf emits a message built like fmt.Sprintf.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()

	fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatElapsed(elapsed))
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}

// enabled evaluates the DEBUG pattern list for a namespace. Exclusion
// patterns win over inclusion patterns regardless of their order.
func enabled(namespace, debug string) bool {
	if debug == "" {
		return false
	}
	on := false
	for _, pattern := range strings.Split(debug, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(rest, namespace) {
				return false
			}
			continue
		}
		if matchPattern(pattern, namespace) {
			on = true
		}
	}
	return on
}

func matchPattern(pattern, namespace string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return pattern == namespace
}
