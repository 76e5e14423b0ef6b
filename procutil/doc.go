// Package procutil enumerates processes, resolves their working directories,
// and signals them.
//
// Enumeration, working-directory links and process names come from
// github.com/shirou/gopsutil, pointed at the root passed in (DefaultRoot,
// normally /proc) through its HOST_PROC context value. Every numeric entry
// is a live process; every other entry is ignored. gopsutil knows where the
// working-directory link lives on each host:
//
//   - Linux: <root>/<pid>/cwd
//   - Solaris and illumos: <root>/<pid>/path/cwd
//
// Other platforms answer from native APIs and ignore the root.
//
// # Example Usage
//
//	pids, err := procutil.Enumerate(procutil.DefaultRoot)
//	if err != nil {
//	    return err // fatal: no process directory
//	}
//	for _, pid := range pids {
//	    cwd, err := procutil.ResolveCwd(procutil.DefaultRoot, pid)
//	    if err != nil {
//	        continue // exited, inaccessible, or unresolvable
//	    }
//	    fmt.Printf("%d %s\n", pid, cwd)
//	}
//
// # Known Limitation
//
// Listing a pid, reading its link and signalling it are three separate
// system calls. A process can exit after it is listed and its pid can be
// reused by an unrelated process before Kill runs. Nothing short of
// kernel-level pid handles closes that window, so callers working from an
// Enumerate snapshot accept it.
package procutil
