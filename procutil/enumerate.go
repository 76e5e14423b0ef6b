package procutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/process"
)

// DefaultRoot is the mount point of the process-information filesystem.
const DefaultRoot = "/proc"

// ErrProcUnavailable is returned when the process directory cannot be read.
var ErrProcUnavailable = errors.New("process directory unavailable")

// rootContext points gopsutil at root instead of HOST_PROC or /proc.
func rootContext(root string) context.Context {
	return context.WithValue(context.Background(), common.EnvKey,
		common.EnvMap{common.HostProcEnvKey: root})
}

// Enumerate lists the pids under root once, in ascending order.
// Only entries named entirely with decimal digits are returned.
func Enumerate(root string) ([]int, error) {
	ids, err := process.PidsWithContext(rootContext(root))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcUnavailable, err)
	}

	pids := make([]int, 0, len(ids))
	for _, id := range ids {
		pids = append(pids, int(id))
	}
	return pids, nil
}
