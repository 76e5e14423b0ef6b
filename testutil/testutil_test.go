package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestTempDir(t *testing.T) {
	var dir string
	t.Run("creates resolved directory", func(t *testing.T) {
		dir = TempDir(t)

		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("temp dir does not exist: %v", err)
		}
		if !info.IsDir() {
			t.Error("expected a directory")
		}

		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			t.Fatal(err)
		}
		if resolved != dir {
			t.Errorf("expected resolved path %q, got %q", resolved, dir)
		}
	})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected temp dir %s to be removed after subtest, got err=%v", dir, err)
	}
}

func TestProcFS(t *testing.T) {
	procs := NewProcFS(t)
	procs.AddProcess(7, "/some/where")
	procs.AddVanished(8)
	procs.AddEntry("self")
	procs.AddFile("meminfo")

	target, err := os.Readlink(procs.CwdLink(7))
	if err != nil {
		t.Fatalf("expected cwd link for pid 7: %v", err)
	}
	if target != "/some/where" {
		t.Errorf("expected link target /some/where, got %q", target)
	}

	if _, err := os.Lstat(procs.CwdLink(8)); !os.IsNotExist(err) {
		t.Errorf("expected no cwd link for vanished pid 8, got err=%v", err)
	}

	for _, name := range []string{"7", "8", "self", "meminfo"} {
		if _, err := os.Stat(filepath.Join(procs.Root, name)); err != nil {
			t.Errorf("expected entry %s: %v", name, err)
		}
	}
}

func TestProcFSCwdLink(t *testing.T) {
	procs := NewProcFS(t)

	expected := filepath.Join(procs.Root, "1234", "cwd")
	if runtime.GOOS == "solaris" || runtime.GOOS == "illumos" {
		expected = filepath.Join(procs.Root, "1234", "path", "cwd")
	}
	if got := procs.CwdLink(1234); got != expected {
		t.Errorf("CwdLink(1234) = %q, expected %q", got, expected)
	}
}
