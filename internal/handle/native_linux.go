// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build linux

package handle

import (
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// O_PATH grants no read or write access to the entry. Changing timestamps
// only needs ownership, so unreadable files and FIFOs can still be updated
// without being opened for I/O.
const openFlags = unix.O_PATH | unix.O_CLOEXEC

const statxMask = unix.STATX_TYPE | unix.STATX_ATIME | unix.STATX_MTIME | unix.STATX_BTIME

// CanSetCreationTime reports whether SetFileTime accepts a creation time on
// this platform. Linux has no call that sets the birth time.
func CanSetCreationTime() bool {
	return false
}

// Native returns the System backed by Linux system calls.
func Native() System {
	return nativeSystem{}
}

type nativeSystem struct{}

func (nativeSystem) Stat(path string) (Attributes, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, statxMask, &stx)
	if err == unix.ENOSYS {
		return statFallback(path)
	}
	if err != nil {
		return Attributes{}, err
	}

	attrs := Attributes{
		Dir:        stx.Mode&unix.S_IFMT == unix.S_IFDIR,
		LastAccess: fromStatx(stx.Atime),
		LastWrite:  fromStatx(stx.Mtime),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		attrs.Creation = fromStatx(stx.Btime)
	}
	return attrs, nil
}

func (nativeSystem) Open(path string, dir bool) (uintptr, error) {
	flags := openFlags
	if dir {
		flags |= unix.O_DIRECTORY
	}

	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return 0, err
	}
	return uintptr(fd), nil
}

func (nativeSystem) SetFileTime(fd uintptr, creation, access, write *filetime.FileTime) error {
	if creation != nil {
		return unix.EOPNOTSUPP
	}

	times := make([]unix.Timespec, 2)
	var err error
	if times[0], err = toTimespec(access); err != nil {
		return err
	}
	if times[1], err = toTimespec(write); err != nil {
		return err
	}

	err = unix.UtimesNanoAt(int(fd), "", times, unix.AT_EMPTY_PATH)
	if err == unix.EINVAL {
		// Kernels before 5.8 do not accept AT_EMPTY_PATH here.
		return utimesProcFd(int(fd), times)
	}
	return err
}

func (nativeSystem) Close(fd uintptr) error {
	return unix.Close(int(fd))
}

// utimesProcFd updates the entry behind an O_PATH descriptor through its
// /proc/self/fd link.
func utimesProcFd(fd int, times []unix.Timespec) error {
	return unix.UtimesNanoAt(unix.AT_FDCWD, "/proc/self/fd/"+strconv.Itoa(fd), times, 0)
}

// toTimespec maps an absent timestamp to UTIME_OMIT. On 32-bit platforms
// instants past 2038 do not fit and fail with ERANGE.
func toTimespec(ft *filetime.FileTime) (unix.Timespec, error) {
	if ft == nil {
		return unix.Timespec{Nsec: unix.UTIME_OMIT}, nil
	}
	return unix.TimeToTimespec(ft.Time())
}

// statFallback serves kernels older than 4.11, which have no statx and no
// birth time.
func statFallback(path string) (Attributes, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Dir:        st.Mode&unix.S_IFMT == unix.S_IFDIR,
		LastAccess: fromTimespec(st.Atim),
		LastWrite:  fromTimespec(st.Mtim),
	}, nil
}

func fromTimespec(ts unix.Timespec) filetime.FileTime {
	ft, err := filetime.FromUnix(ts.Unix())
	if err != nil {
		return 0
	}
	return ft
}

func fromStatx(ts unix.StatxTimestamp) filetime.FileTime {
	ft, err := filetime.FromUnix(ts.Sec, int64(ts.Nsec))
	if err != nil {
		return 0
	}
	return ft
}
