// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build darwin || freebsd

package handle

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// Neither platform can update timestamps through a descriptor with
// nanosecond precision and per-field omission, so the update goes through
// the path. The open descriptor pins the entry, and the path is checked to
// still name it right before the update.
const openFlags = unix.O_RDONLY | unix.O_CLOEXEC | unix.O_NOCTTY | unix.O_NONBLOCK

var native = &nativeSystem{paths: map[int]string{}}

// Native returns the System backed by BSD system calls.
func Native() System {
	return native
}

type nativeSystem struct {
	mu    sync.Mutex
	paths map[int]string
}

func (*nativeSystem) Stat(path string) (Attributes, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Dir:        st.Mode&unix.S_IFMT == unix.S_IFDIR,
		Creation:   fromTimespec(st.Btim),
		LastAccess: fromTimespec(st.Atim),
		LastWrite:  fromTimespec(st.Mtim),
	}, nil
}

func (s *nativeSystem) Open(path string, dir bool) (uintptr, error) {
	flags := openFlags
	if dir {
		flags |= unix.O_DIRECTORY
	}

	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.paths[fd] = path
	s.mu.Unlock()
	return uintptr(fd), nil
}

func (s *nativeSystem) SetFileTime(fd uintptr, creation, access, write *filetime.FileTime) error {
	s.mu.Lock()
	path, ok := s.paths[int(fd)]
	s.mu.Unlock()
	if !ok {
		return unix.EBADF
	}

	if err := sameEntry(int(fd), path); err != nil {
		return err
	}
	return setTimes(path, creation, access, write)
}

func (s *nativeSystem) Close(fd uintptr) error {
	s.mu.Lock()
	delete(s.paths, int(fd))
	s.mu.Unlock()
	return unix.Close(int(fd))
}

// sameEntry fails with ESTALE when path no longer names the entry open on
// fd, for example because it was removed or replaced.
func sameEntry(fd int, path string) error {
	var open, named unix.Stat_t
	if err := unix.Fstat(fd, &open); err != nil {
		return err
	}
	if err := unix.Stat(path, &named); err != nil {
		if err == unix.ENOENT {
			return unix.ESTALE
		}
		return err
	}
	if open.Dev != named.Dev || open.Ino != named.Ino {
		return unix.ESTALE
	}
	return nil
}

// fromTimespec maps timestamps the filesystem does not record, which some
// report as -1, to the zero FileTime.
func fromTimespec(ts unix.Timespec) filetime.FileTime {
	ft, err := filetime.FromUnix(ts.Unix())
	if err != nil {
		return 0
	}
	return ft
}
