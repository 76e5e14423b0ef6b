package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
)

// TempDir creates a temporary directory with automatic cleanup and returns
// its canonical path. Symlinks in the system temp location are resolved
// (macOS places temp dirs under /var, a link to /private/var), so the result
// compares equal to what canonicalization produces.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "killbysubdir-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("Failed to resolve temp directory %s: %v", tmpDir, err)
	}
	return resolved
}

// ProcFS is a fake process-information directory rooted in a temp dir.
type ProcFS struct {
	Root string
	t    *testing.T
}

// NewProcFS creates an empty fake process directory. Tests using it are
// skipped where process listing does not go through a procfs root.
func NewProcFS(t *testing.T) *ProcFS {
	t.Helper()
	switch runtime.GOOS {
	case "linux", "solaris", "illumos":
	default:
		t.Skipf("process listing on %s does not read a procfs root", runtime.GOOS)
	}
	return &ProcFS{
		Root: TempDir(t),
		t:    t,
	}
}

// CwdLink returns where the working-directory link of pid lives: under the
// per-process "path" directory on Solaris and illumos, directly inside the
// process entry elsewhere.
func (p *ProcFS) CwdLink(pid int) string {
	if runtime.GOOS == "solaris" || runtime.GOOS == "illumos" {
		return filepath.Join(p.Root, strconv.Itoa(pid), "path", "cwd")
	}
	return filepath.Join(p.Root, strconv.Itoa(pid), "cwd")
}

// AddProcess adds a process entry whose working-directory link points at cwd.
// cwd does not need to exist.
func (p *ProcFS) AddProcess(pid int, cwd string) {
	p.t.Helper()

	link := p.CwdLink(pid)
	if err := os.MkdirAll(filepath.Dir(link), 0o750); err != nil {
		p.t.Fatalf("Failed to create process entry %d: %v", pid, err)
	}
	if err := os.Symlink(cwd, link); err != nil {
		p.t.Fatalf("Failed to create cwd link for %d: %v", pid, err)
	}
}

// AddVanished adds a numeric entry with no working-directory link, as seen
// for a process that exited between listing and resolution.
func (p *ProcFS) AddVanished(pid int) {
	p.t.Helper()
	p.AddEntry(strconv.Itoa(pid))
}

// AddEntry adds a directory with an arbitrary name, such as "self" or "sys".
func (p *ProcFS) AddEntry(name string) {
	p.t.Helper()
	if err := os.MkdirAll(filepath.Join(p.Root, name), 0o750); err != nil {
		p.t.Fatalf("Failed to create entry %s: %v", name, err)
	}
}

// AddFile adds a regular file, such as "meminfo" or "uptime".
func (p *ProcFS) AddFile(name string) {
	p.t.Helper()
	if err := os.WriteFile(filepath.Join(p.Root, name), nil, 0o600); err != nil {
		p.t.Fatalf("Failed to create file %s: %v", name, err)
	}
}
