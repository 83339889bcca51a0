//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/process"
)

var errSnapshotClosed = errors.New("process snapshot used after release")

// psTable reads the process table through gopsutil. The snapshot is the PID
// list captured at open time; names are resolved lazily while walking it.
type psTable struct{}

func platformTable() Table {
	return psTable{}
}

func (psTable) OpenSnapshot() (Snapshot, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}
	return &psSnapshot{pids: pids}, nil
}

type psSnapshot struct {
	pids   []int32
	pos    int
	closed bool
}

func (s *psSnapshot) First() (Entry, error) {
	s.pos = 0
	return s.advance()
}

// Next returns io.EOF once every PID has been visited.
func (s *psSnapshot) Next() (Entry, error) {
	return s.advance()
}

func (s *psSnapshot) Close() error {
	s.closed = true
	s.pids = nil
	return nil
}

// advance skips PIDs that exited after the snapshot was taken.
func (s *psSnapshot) advance() (Entry, error) {
	if s.closed {
		return Entry{}, errSnapshotClosed
	}
	for s.pos < len(s.pids) {
		pid := s.pids[s.pos]
		s.pos++

		name, err := processExecName(pid)
		if err != nil || name == "" {
			continue
		}
		return Entry{PID: uint32(pid), ExeFile: name}, nil
	}
	return Entry{}, io.EOF
}

// processExecName returns the base name of the executable, falling back to
// the kernel's short name for kernel threads and processes whose executable
// link cannot be read.
func processExecName(pid int32) (string, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", err
	}
	if exe, err := p.Exe(); err == nil && exe != "" {
		return filepath.Base(exe), nil
	}
	return p.Name()
}
