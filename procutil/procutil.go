// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"math"

	"github.com/shirou/gopsutil/v4/process"
)

// ErrInvalidPID is returned for pids that would address a process group or
// every process instead of a single process.
var ErrInvalidPID = errors.New("invalid pid")

// Describe returns the executable name of pid as read from root, or ""
// when it is unavailable. It is used for diagnostics only.
func Describe(root string, pid int) string {
	if pid <= 0 || pid > math.MaxInt32 {
		return ""
	}

	ctx := rootContext(root)
	proc, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return ""
	}
	name, err := proc.NameWithContext(ctx)
	if err != nil {
		return ""
	}
	return name
}

// Kill sends the platform's unconditional termination signal to pid.
// It does not wait for the process to exit.
func Kill(pid int) error {
	if pid <= 0 {
		return ErrInvalidPID
	}
	return killProcess(pid)
}

// killProcess is implemented in platform-specific files:
// - procutil_windows.go for Windows
// - procutil_unix.go for Unix-like systems
