// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build windows

package filetimes

import (
	"golang.org/x/sys/windows"
)

var codeKinds = []codeKind{
	{windows.ERROR_FILE_NOT_FOUND, NotFound},
	{windows.ERROR_PATH_NOT_FOUND, NotFound},
	{windows.ERROR_INVALID_DRIVE, NotFound},
	{windows.ERROR_BAD_NETPATH, NotFound},
	{windows.ERROR_BAD_NET_NAME, NotFound},
	{windows.ERROR_INVALID_NAME, NotFound},

	{windows.ERROR_ACCESS_DENIED, AccessDenied},
	{windows.ERROR_PRIVILEGE_NOT_HELD, AccessDenied},

	{windows.ERROR_FILENAME_EXCED_RANGE, PathTooLong},

	{windows.ERROR_SHARING_VIOLATION, SharingViolation},
	{windows.ERROR_LOCK_VIOLATION, SharingViolation},

	{windows.ERROR_INVALID_HANDLE, InvalidHandle},

	{windows.ERROR_NOT_SUPPORTED, NotSupported},
	{windows.ERROR_INVALID_FUNCTION, NotSupported},

	{windows.ERROR_WRITE_PROTECT, ReadOnly},
}
