// Package testutil provides common testing utilities for killbysubdir.
//
// This package includes helpers for:
//   - Creating symlink-resolved temporary directories with automatic cleanup (TempDir)
//   - Building a fake process-information directory (ProcFS)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestScan(t *testing.T) {
//	    work := testutil.TempDir(t)
//	    procs := testutil.NewProcFS(t)
//	    procs.AddProcess(42, work)
//	    procs.AddEntry("self")
//
//	    pids, err := procutil.Enumerate(procs.Root)
//	    // pids == []int{42}
//	}
package testutil
