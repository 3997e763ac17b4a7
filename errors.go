// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filetimes

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

var (
	// ErrEmptyPath is returned when an operation is given an empty path.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrTimeOutOfRange is returned for times that have no native file time
	// encoding: anything before 1601-01-01 (including the zero time.Time)
	// or after the year 30827.
	ErrTimeOutOfRange = filetime.ErrOutOfRange
)

// Kind is the category of an operating system failure. A Kind is itself an
// error so that callers can test for it with errors.Is:
//
//	if errors.Is(err, filetimes.NotFound) {
//		...
//	}
type Kind int

const (
	// Unknown is any failure that has no specific kind. The raw code is
	// kept in Error.Code.
	Unknown Kind = iota

	// NotFound indicates the path does not resolve to an existing entry.
	NotFound

	// AccessDenied indicates the caller may not open the entry or change
	// its attributes.
	AccessDenied

	// PathTooLong indicates the path exceeds a limit even under long path
	// handling.
	PathTooLong

	// SharingViolation indicates another process holds the entry in a way
	// that excludes attribute access.
	SharingViolation

	// InvalidHandle indicates the handle stopped being valid between being
	// opened and being used, for example because the entry was removed.
	InvalidHandle

	// NotSupported indicates the platform or filesystem cannot change the
	// requested timestamp, such as creation time on Linux.
	NotSupported

	// ReadOnly indicates the entry lives on a read-only or write-protected
	// volume.
	ReadOnly
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown error"
	case NotFound:
		return "not found"
	case AccessDenied:
		return "access denied"
	case PathTooLong:
		return "path too long"
	case SharingViolation:
		return "sharing violation"
	case InvalidHandle:
		return "invalid handle"
	case NotSupported:
		return "not supported"
	case ReadOnly:
		return "read-only"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Error describes a failed operation on a filesystem entry.
type Error struct {
	// Op is the step that failed: "stat", "open" or "settime".
	Op   string
	Path string

	// Code is the raw operating system error number, or 0 when the failure
	// did not come from the operating system.
	Code syscall.Errno

	Kind Kind

	// Err is the underlying error. For failures with a Code it is the
	// syscall.Errno itself.
	Err error
}

func (e *Error) Error() string {
	if e.Kind == Unknown && e.Code != 0 {
		return fmt.Sprintf("%s %s: %s (code %d): %s", e.Op, e.Path, e.Kind, uintptr(e.Code), e.Err)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying error, so that errors.Is matches both the
// raw syscall.Errno and the portable fs errors such as fs.ErrNotExist.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
