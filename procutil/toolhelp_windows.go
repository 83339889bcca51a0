//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// toolhelpTable reads the process table through the Toolhelp32 API.
type toolhelpTable struct{}

func platformTable() Table {
	return toolhelpTable{}
}

func (toolhelpTable) OpenSnapshot() (Snapshot, error) {
	handle, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, err
	}
	return &toolhelpSnapshot{handle: handle}, nil
}

// toolhelpSnapshot reuses one PROCESSENTRY32W buffer for the whole walk.
type toolhelpSnapshot struct {
	handle windows.Handle
	entry  windows.ProcessEntry32
}

func (s *toolhelpSnapshot) First() (Entry, error) {
	s.entry.Size = uint32(unsafe.Sizeof(s.entry))
	if err := windows.Process32First(s.handle, &s.entry); err != nil {
		return Entry{}, err
	}
	return s.current(), nil
}

// Next fails with ERROR_NO_MORE_FILES once the table is exhausted.
func (s *toolhelpSnapshot) Next() (Entry, error) {
	if err := windows.Process32Next(s.handle, &s.entry); err != nil {
		return Entry{}, err
	}
	return s.current(), nil
}

func (s *toolhelpSnapshot) Close() error {
	return windows.CloseHandle(s.handle)
}

// current decodes the whole szExeFile buffer; Entry.Name drops the
// terminator and whatever a longer earlier name left behind it.
func (s *toolhelpSnapshot) current() Entry {
	return Entry{
		PID:     s.entry.ProcessID,
		ExeFile: string(utf16.Decode(s.entry.ExeFile[:])),
	}
}
