//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"syscall"
)

// killProcess sends SIGKILL, which cannot be caught or ignored.
func killProcess(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}
