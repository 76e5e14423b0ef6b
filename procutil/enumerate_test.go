package procutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jongio/killbysubdir/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateKeepsOnlyNumericEntries(t *testing.T) {
	procs := testutil.NewProcFS(t)
	procs.AddVanished(1)
	procs.AddVanished(42)
	procs.AddVanished(31337)
	procs.AddEntry("self")
	procs.AddEntry("thread-self")
	procs.AddEntry("sys")
	procs.AddEntry("12a")
	procs.AddEntry("a12")
	procs.AddEntry("-5")
	procs.AddEntry("+5")
	procs.AddFile("meminfo")
	procs.AddFile("1.5")

	pids, err := Enumerate(procs.Root)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 42, 31337}, pids)
}

func TestEnumerateEmptyDirectory(t *testing.T) {
	procs := testutil.NewProcFS(t)

	pids, err := Enumerate(procs.Root)
	require.NoError(t, err)
	assert.Empty(t, pids)
}

func TestEnumerateSkipsOverflowingNames(t *testing.T) {
	procs := testutil.NewProcFS(t)
	procs.AddVanished(7)
	procs.AddEntry("99999999999999999999999999")

	pids, err := Enumerate(procs.Root)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, pids)
}

func TestEnumerateMissingRoot(t *testing.T) {
	procs := testutil.NewProcFS(t)
	root := filepath.Join(procs.Root, "no-proc-here")

	pids, err := Enumerate(root)
	require.Error(t, err)
	assert.Nil(t, pids)
	assert.True(t, errors.Is(err, ErrProcUnavailable), "expected ErrProcUnavailable, got %v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected wrapped os.ErrNotExist, got %v", err)
}

func TestEnumerateRootIsFile(t *testing.T) {
	procs := testutil.NewProcFS(t)
	root := filepath.Join(procs.Root, "proc")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), 0o600))

	_, err := Enumerate(root)
	assert.ErrorIs(t, err, ErrProcUnavailable)
}

func TestEnumerateRealProcIncludesSelf(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires a Linux /proc")
	}

	pids, err := Enumerate(DefaultRoot)
	require.NoError(t, err)
	assert.Contains(t, pids, os.Getpid())
}

func TestEnumerateIgnoresHostProc(t *testing.T) {
	procs := testutil.NewProcFS(t)
	procs.AddVanished(4242)
	procs.AddEntry("self")

	t.Setenv("HOST_PROC", filepath.Join(procs.Root, "elsewhere"))

	pids, err := Enumerate(procs.Root)
	require.NoError(t, err)
	assert.Equal(t, []int{4242}, pids)
}
