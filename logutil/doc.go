// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured diagnostic logger for killbysubdir.
//
// Diagnostics go to stderr through slog so they never mix with the
// "Killing process <id>" lines on stdout. Normal runs log nothing below
// warning level that a user would see; per-process skips are debug records.
//
// # Basic Usage
//
//	logutil.SetupLogger(debug, structured)
//
//	log := logutil.NewLogger("reaper")
//	log.WithPID(pid).Debug("skipping process", "reason", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set KILLBYSUBDIR_DEBUG=true
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"skipping process","component":"reaper","pid":812}
//
// Otherwise, logs use the slog text format:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="skipping process" component=reaper pid=812
package logutil
