// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"iter"
	"strings"
)

// Entry is one process as read from a Snapshot.
type Entry struct {
	PID uint32

	// ExeFile is the executable name buffer as decoded from the OS. It may
	// hold a NUL terminator followed by padding or stale characters.
	ExeFile string
}

// Name returns the executable name up to the first NUL terminator.
func (e Entry) Name() string {
	if i := strings.IndexByte(e.ExeFile, 0); i >= 0 {
		return e.ExeFile[:i]
	}
	return e.ExeFile
}

// Snapshot is a point-in-time view of the process table.
//
// Entries returned by First and Next are only meaningful while the snapshot
// is open. Next returns an error once the table is exhausted. Close is called
// exactly once by the lookup that opened the snapshot.
type Snapshot interface {
	First() (Entry, error)
	Next() (Entry, error)
	Close() error
}

// Table opens snapshots of the process table.
// Implementations must allow concurrent OpenSnapshot calls.
type Table interface {
	OpenSnapshot() (Snapshot, error)
}

// snapshotGuard owns an open Snapshot for the duration of one lookup.
// It is only ever built by acquire, so it never wraps a failed snapshot.
type snapshotGuard struct {
	snap     Snapshot
	released bool
}

// acquire opens a snapshot from t. On failure there is nothing to release.
func acquire(t Table) (*snapshotGuard, error) {
	snap, err := t.OpenSnapshot()
	if err != nil {
		return nil, err
	}
	snapshotsOpen.Inc()
	return &snapshotGuard{snap: snap}, nil
}

// release closes the snapshot. Calls after the first are no-ops.
func (g *snapshotGuard) release() error {
	if g.released {
		return nil
	}
	g.released = true
	snapshotsOpen.Dec()
	return g.snap.Close()
}

// entries yields first and then every entry Next produces. Any Next error
// ends the sequence. The sequence can be ranged over only once.
func entries(first Entry, snap Snapshot) iter.Seq[Entry] {
	used := false
	return func(yield func(Entry) bool) {
		if used {
			return
		}
		used = true

		e := first
		for yield(e) {
			next, err := snap.Next()
			if err != nil {
				// Exhaustion and genuine OS errors look the same here.
				return
			}
			e = next
		}
	}
}
