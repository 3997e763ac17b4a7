// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filetimes

import (
	"sync"
	"syscall"
	"testing"

	"github.com/hashicorp/go-filetimes/internal/filetime"
	"github.com/hashicorp/go-filetimes/internal/handle"
)

// Error numbers used by the fake. They are arbitrary and only need to be
// distinct from each other and from zero.
const (
	fakeNotFound  = syscall.Errno(9001)
	fakeSharing   = syscall.Errno(9002)
	fakeBadHandle = syscall.Errno(9003)
	fakeCloseFail = syscall.Errno(9004)
)

type fakeEntry struct {
	dir    bool
	times  handle.Attributes
	locked bool
}

// fakeSystem is an in-memory handle.System. Like a real OS it keeps a
// "last error" that every call overwrites, so tests can check that the
// code reported to the caller is the one from the failing call.
type fakeSystem struct {
	mu sync.Mutex

	entries map[string]*fakeEntry
	handles map[uintptr]string
	nextFd  uintptr

	lastError syscall.Errno
	setCalls  int
	opened    int
	closed    int

	failClose  bool
	panicOnSet bool
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		entries: map[string]*fakeEntry{},
		handles: map[uintptr]string{},
		nextFd:  100,
	}
}

func (s *fakeSystem) addFile(path string, t filetime.FileTime) *fakeEntry {
	e := &fakeEntry{times: handle.Attributes{Creation: t, LastAccess: t, LastWrite: t}}
	s.entries[path] = e
	return e
}

func (s *fakeSystem) addDir(path string, t filetime.FileTime) *fakeEntry {
	e := s.addFile(path, t)
	e.dir = true
	return e
}

func (s *fakeSystem) fail(code syscall.Errno) error {
	s.lastError = code
	return code
}

func (s *fakeSystem) Stat(path string) (handle.Attributes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[path]
	if !ok {
		return handle.Attributes{}, s.fail(fakeNotFound)
	}
	s.lastError = 0
	attrs := e.times
	attrs.Dir = e.dir
	return attrs, nil
}

func (s *fakeSystem) Open(path string, dir bool) (uintptr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[path]
	if !ok {
		return 0, s.fail(fakeNotFound)
	}
	if e.locked {
		return 0, s.fail(fakeSharing)
	}
	if e.dir != dir {
		// opening a directory without backup semantics is refused
		return 0, s.fail(syscall.Errno(5))
	}

	fd := s.nextFd
	s.nextFd++
	s.handles[fd] = path
	s.opened++
	s.lastError = 0
	return fd, nil
}

func (s *fakeSystem) SetFileTime(fd uintptr, creation, access, write *filetime.FileTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setCalls++
	if s.panicOnSet {
		panic("fake SetFileTime panic")
	}

	path, ok := s.handles[fd]
	if !ok {
		return s.fail(fakeBadHandle)
	}
	e, ok := s.entries[path]
	if !ok {
		// removed while the handle was open
		return s.fail(fakeBadHandle)
	}

	if creation != nil {
		e.times.Creation = *creation
	}
	if access != nil {
		e.times.LastAccess = *access
	}
	if write != nil {
		e.times.LastWrite = *write
	}
	s.lastError = 0
	return nil
}

func (s *fakeSystem) Close(fd uintptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[fd]; !ok {
		return s.fail(fakeBadHandle)
	}
	delete(s.handles, fd)
	s.closed++

	if s.failClose {
		return s.fail(fakeCloseFail)
	}
	s.lastError = 0
	return nil
}

func (s *fakeSystem) openHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

func withSystem(sys handle.System) SetterOption {
	return func(s *Setter) error {
		s.sys = sys
		return nil
	}
}

func newFakeSetter(t *testing.T, sys *fakeSystem, options ...SetterOption) *Setter {
	t.Helper()

	s, err := NewSetter(append([]SetterOption{withSystem(sys)}, options...)...)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return s
}

// useFakeCodes maps the fake's error numbers through the real translator.
func useFakeCodes(t *testing.T) {
	t.Helper()

	saved := codeKinds
	codeKinds = append([]codeKind{
		{fakeNotFound, NotFound},
		{fakeSharing, SharingViolation},
		{fakeBadHandle, InvalidHandle},
	}, saved...)
	t.Cleanup(func() { codeKinds = saved })
}
