// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filetimes

import (
	"errors"
	"syscall"

	"github.com/hashicorp/go-filetimes/internal/handle"
)

// codeKind maps one operating system error number to a Kind. The tables are
// slices rather than maps because some platforms alias error numbers
// (ENOTSUP and EOPNOTSUPP on Linux).
type codeKind struct {
	code syscall.Errno
	kind Kind
}

func kindOf(code syscall.Errno) Kind {
	for _, ck := range codeKinds {
		if ck.code == code {
			return ck.kind
		}
	}
	return Unknown
}

// translate turns the failure of an operation on path into an *Error. The
// error number has already been captured by the handle package at the
// failing call, so nothing here can disturb it.
func translate(path string, err error) *Error {
	e := &Error{
		Op:   handle.OpSetTime,
		Path: path,
		Err:  err,
	}

	var opErr *handle.OpError
	if errors.As(err, &opErr) {
		e.Op = opErr.Op
		e.Code = opErr.Code
		e.Err = opErr.Err
	} else {
		var errno syscall.Errno
		if errors.As(err, &errno) {
			e.Code = errno
		}
	}

	switch {
	case e.Code != 0:
		e.Kind = kindOf(e.Code)
	case errors.Is(e.Err, handle.ErrReleased):
		e.Kind = InvalidHandle
	case errors.Is(e.Err, errors.ErrUnsupported):
		e.Kind = NotSupported
	default:
		e.Kind = Unknown
	}
	return e
}
