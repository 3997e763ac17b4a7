// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build unix

package filetimes

import (
	"golang.org/x/sys/unix"
)

var codeKinds = []codeKind{
	{unix.ENOENT, NotFound},
	{unix.ENOTDIR, NotFound},

	{unix.EACCES, AccessDenied},
	{unix.EPERM, AccessDenied},

	{unix.ENAMETOOLONG, PathTooLong},

	{unix.EBUSY, SharingViolation},
	{unix.ETXTBSY, SharingViolation},

	{unix.EBADF, InvalidHandle},
	{unix.ESTALE, InvalidHandle},

	{unix.ENOTSUP, NotSupported},
	{unix.EOPNOTSUPP, NotSupported},
	{unix.ENOSYS, NotSupported},

	{unix.EROFS, ReadOnly},
}
