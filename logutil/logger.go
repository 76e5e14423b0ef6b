// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger tags every record with the component that wrote it.
// Values are immutable; the With methods return extended copies.
type ComponentLogger struct {
	base *slog.Logger
}

// NewLogger binds a ComponentLogger to the global logger as configured at
// call time. Call SetupLogger first.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{base: current().With("component", component)}
}

// WithPID scopes the logger to one process.
func (l *ComponentLogger) WithPID(pid int) *ComponentLogger {
	return l.WithFields("pid", pid)
}

// WithFields adds alternating key-value pairs to every later record.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return &ComponentLogger{base: l.base.With(fields...)}
}

// DebugEnabled reports whether debug records would be emitted, so callers
// can skip gathering diagnostics that would be dropped.
func (l *ComponentLogger) DebugEnabled() bool {
	return IsDebugEnabled()
}

func (l *ComponentLogger) Debug(msg string, args ...any) {
	l.base.Debug(msg, args...)
}

func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.base.Warn(msg, args...)
}
