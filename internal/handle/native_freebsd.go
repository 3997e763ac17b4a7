// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build freebsd

package handle

import (
	"golang.org/x/sys/unix"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// CanSetCreationTime reports whether SetFileTime accepts a creation time on
// this platform. FreeBSD only moves the birth time as a side effect of
// setting an older modification time.
func CanSetCreationTime() bool {
	return false
}

func setTimes(path string, creation, access, write *filetime.FileTime) error {
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
	return unix.UtimesNanoAt(unix.AT_FDCWD, path, times, 0)
}

// toTimespec maps an absent timestamp to UTIME_OMIT.
func toTimespec(ft *filetime.FileTime) (unix.Timespec, error) {
	if ft == nil {
		return unix.Timespec{Nsec: unix.UTIME_OMIT}, nil
	}
	return unix.TimeToTimespec(ft.Time())
}
