// Package procutil resolves the PID of a running process from its executable name.
//
// A lookup takes a point-in-time snapshot of the operating system's process
// table, walks it entry by entry, and returns the PID of the first entry whose
// executable name equals the requested name. The snapshot is released exactly
// once before the lookup returns, whether the process was found, not found, or
// the walk failed part way through.
//
// # Backends
//
// The snapshot comes from a [Table]. The platform table is selected at build time:
//
//   - Windows: Toolhelp32 (CreateToolhelp32Snapshot, Process32First,
//     Process32Next, CloseHandle) via golang.org/x/sys/windows
//   - Everything else: github.com/shirou/gopsutil/v4, which reads /proc on
//     Linux and uses sysctl on macOS/BSD
//
// Tests and callers with special needs can supply their own [Table] with
// [WithTable].
//
// # Matching
//
// Names are compared exactly, byte for byte, on every platform. Windows users
// looking for "Notepad.exe" as well as "notepad.exe" can opt into Unicode case
// folding with [WithFoldCase]. Partial names never match.
//
// # Results and errors
//
// Not found is a normal result, reported as ok == false with a nil error.
// Only two steps are fatal: opening the snapshot ([ErrSnapshotCreation]) and
// reading its first entry ([ErrFirstEntry]). A failure while advancing to a
// later entry ends the walk as if the table were exhausted.
//
// # Example Usage
//
//	pid, ok, err := procutil.FindProcessID("nginx")
//	if err != nil {
//	    return fmt.Errorf("looking up nginx: %w", err)
//	}
//	if !ok {
//	    fmt.Println("nginx is not running")
//	    return nil
//	}
//	fmt.Printf("nginx is PID %d\n", pid)
//
//	// Case-insensitive lookup on Windows
//	finder := procutil.NewFinder(procutil.WithFoldCase())
//	pid, ok, err = finder.FindProcessID("NOTEPAD.EXE")
package procutil
