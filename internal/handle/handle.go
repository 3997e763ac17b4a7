// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package handle opens filesystem entries for attribute-only access and
// applies timestamp updates through the open handle.
package handle

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// Operation names recorded in OpError.
const (
	OpStat    = "stat"
	OpOpen    = "open"
	OpSetTime = "settime"
	OpClose   = "close"
)

// ErrReleased is returned when a handle is used after Release.
var ErrReleased = errors.New("handle already released")

// EntryType tells Acquire which open flags to use.
type EntryType int

const (
	// Detect inspects the entry before opening it.
	Detect EntryType = iota
	File
	Directory
)

func (t EntryType) String() string {
	switch t {
	case Detect:
		return "detect"
	case File:
		return "file"
	case Directory:
		return "directory"
	}
	return fmt.Sprintf("EntryType(%d)", int(t))
}

// Attributes is the subset of entry metadata the System reports. Timestamps
// the platform does not record are left as the zero FileTime.
type Attributes struct {
	Dir        bool
	Creation   filetime.FileTime
	LastAccess filetime.FileTime
	LastWrite  filetime.FileTime
}

// System is the operating system boundary. Every method returns the OS
// failure of that exact call; implementations must not make further OS
// calls between a failing call and returning its error.
type System interface {
	Stat(path string) (Attributes, error)
	Open(path string, dir bool) (uintptr, error)

	// SetFileTime updates the timestamps of an open entry in one call. A nil
	// argument leaves that timestamp unchanged.
	SetFileTime(fd uintptr, creation, access, write *filetime.FileTime) error

	Close(fd uintptr) error
}

// OpError records the raw failure of a single OS call.
type OpError struct {
	Op string

	// Code is the OS error number, or 0 when the failure did not come with
	// one.
	Code syscall.Errno

	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// opError captures the error number of err. It must be called directly on
// the result of the failing call.
func opError(op string, err error) *OpError {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &OpError{Op: op, Code: errno, Err: errno}
	}
	return &OpError{Op: op, Err: err}
}

// Stat reports the attributes of path without opening it.
func Stat(sys System, path string) (Attributes, error) {
	attrs, err := sys.Stat(path)
	if err != nil {
		return Attributes{}, opError(OpStat, err)
	}
	return attrs, nil
}

// Handle is an exclusively owned open entry. It must be released exactly
// once, and is not safe for concurrent use.
type Handle struct {
	sys      System
	fd       uintptr
	path     string
	dir      bool
	released bool
}

// Acquire opens path for attribute writes.
func Acquire(sys System, path string, typ EntryType) (*Handle, error) {
	var dir bool
	switch typ {
	case Detect:
		attrs, err := sys.Stat(path)
		if err != nil {
			return nil, opError(OpStat, err)
		}
		dir = attrs.Dir
	case Directory:
		dir = true
	case File:
	default:
		return nil, fmt.Errorf("invalid entry type %s", typ)
	}

	fd, err := sys.Open(path, dir)
	if err != nil {
		return nil, opError(OpOpen, err)
	}

	return &Handle{
		sys:  sys,
		fd:   fd,
		path: path,
		dir:  dir,
	}, nil
}

// Path returns the path the handle was acquired for.
func (h *Handle) Path() string {
	return h.path
}

// IsDir reports whether the handle was opened as a directory.
func (h *Handle) IsDir() bool {
	return h.dir
}

// Release closes the handle. Calling Release again is a no-op.
func (h *Handle) Release() error {
	if h.released {
		return nil
	}
	h.released = true

	if err := h.sys.Close(h.fd); err != nil {
		return opError(OpClose, err)
	}
	return nil
}
