package procutil

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// MaxLinkTarget is the largest working-directory link target accepted,
// matching PATH_MAX on Linux. Longer targets are rejected, never truncated.
const MaxLinkTarget = 4096

var (
	// ErrLinkTooLong is returned when a link target reaches MaxLinkTarget.
	ErrLinkTooLong = errors.New("link target too long")
	// ErrUnusableTarget is returned for link targets that are not an
	// absolute path, such as kernel placeholders or names with a NUL byte.
	ErrUnusableTarget = errors.New("link target is not an absolute path")
)

// ResolveCwd returns the canonical working directory of pid.
//
// Any error means "no data" for this pid: the process exited, is not
// accessible, or its directory no longer exists. Callers skip the process
// rather than treating the error as fatal.
func ResolveCwd(root string, pid int) (string, error) {
	return resolveCwd(root, pid, MaxLinkTarget)
}

func resolveCwd(root string, pid int, maxTarget int) (string, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return "", fmt.Errorf("pid %d: %w", pid, ErrInvalidPID)
	}

	proc := &process.Process{Pid: int32(pid)}
	target, err := proc.CwdWithContext(rootContext(root))
	if err != nil {
		return "", err
	}
	if len(target) >= maxTarget {
		return "", fmt.Errorf("pid %d: %w", pid, ErrLinkTooLong)
	}
	if strings.IndexByte(target, 0) >= 0 || !filepath.IsAbs(target) {
		return "", fmt.Errorf("pid %d: %w", pid, ErrUnusableTarget)
	}

	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return "", err
	}
	return resolved, nil
}
