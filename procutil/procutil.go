// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"fmt"

	"github.com/jongio/procfind/logutil"
	"golang.org/x/text/cases"
)

var (
	// ErrSnapshotCreation is returned when the OS refuses to produce a
	// process-table snapshot.
	ErrSnapshotCreation = errors.New("cannot create process snapshot")

	// ErrFirstEntry is returned when a snapshot was opened but its first
	// entry could not be read. The process table always holds at least the
	// calling process, so this is never reported as "no processes".
	ErrFirstEntry = errors.New("cannot read first process entry")
)

// Lookup steps reported in LookupError.Op.
const (
	OpOpenSnapshot = "open snapshot"
	OpFirstEntry   = "first entry"
)

// LookupError describes a lookup that failed before the table could be walked.
// Err wraps both the sentinel (ErrSnapshotCreation or ErrFirstEntry) and the
// native OS error.
type LookupError struct {
	Op   string
	Name string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("find process %q: %v", e.Name, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Option configures a Finder.
type Option func(*Finder)

// WithTable makes the Finder read snapshots from t instead of the platform table.
func WithTable(t Table) Option {
	return func(f *Finder) {
		f.table = t
	}
}

// WithFoldCase compares names using Unicode case folding instead of exact equality.
func WithFoldCase() Option {
	return func(f *Finder) {
		f.foldCase = true
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *logutil.ComponentLogger) Option {
	return func(f *Finder) {
		f.log = l
	}
}

// Finder resolves executable names to PIDs. A Finder holds no per-lookup
// state and is safe for concurrent use as long as its Table is.
type Finder struct {
	table    Table
	foldCase bool
	log      *logutil.ComponentLogger
}

// NewFinder creates a Finder backed by the platform process table.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{}
	for _, opt := range opts {
		opt(f)
	}
	if f.table == nil {
		f.table = platformTable()
	}
	if f.log == nil {
		f.log = logutil.NewLogger("procutil")
	}
	return f
}

// FindProcessID returns the PID of the first process named name in the
// platform's enumeration order. ok is false when no process matches.
func FindProcessID(name string) (pid uint32, ok bool, err error) {
	return NewFinder().FindProcessID(name)
}

// FindProcessID returns the PID of the first process named name in the
// table's enumeration order. ok is false when no process matches.
func (f *Finder) FindProcessID(name string) (pid uint32, ok bool, err error) {
	log := f.log.WithOperation("find").WithFields("name", name)

	guard, err := acquire(f.table)
	if err != nil {
		recordLookup(resultError, 0)
		log.Warn("opening process snapshot failed", "error", err)
		return 0, false, &LookupError{
			Op:   OpOpenSnapshot,
			Name: name,
			Err:  fmt.Errorf("%w: %w", ErrSnapshotCreation, err),
		}
	}
	defer func() {
		if cerr := guard.release(); cerr != nil {
			log.Warn("releasing process snapshot failed", "error", cerr)
		}
	}()

	first, err := guard.snap.First()
	if err != nil {
		recordLookup(resultError, 0)
		log.Warn("reading first process entry failed", "error", err)
		return 0, false, &LookupError{
			Op:   OpFirstEntry,
			Name: name,
			Err:  fmt.Errorf("%w: %w", ErrFirstEntry, err),
		}
	}

	match := f.matcher(name)
	scanned := 0
	for e := range entries(first, guard.snap) {
		scanned++
		if match(e.Name()) {
			recordLookup(resultFound, scanned)
			log.Debug("process found", "pid", e.PID, "scanned", scanned)
			return e.PID, true, nil
		}
	}

	recordLookup(resultNotFound, scanned)
	log.Debug("process not found", "scanned", scanned)
	return 0, false, nil
}

// matcher returns the comparison for one lookup. A Caser carries state, so
// each lookup gets its own.
func (f *Finder) matcher(name string) func(string) bool {
	if !f.foldCase {
		return func(candidate string) bool {
			return candidate == name
		}
	}
	c := cases.Fold()
	want := c.String(name)
	return func(candidate string) bool {
		return c.String(candidate) == want
	}
}
