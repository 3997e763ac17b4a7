// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build darwin

package handle

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// CanSetCreationTime reports whether SetFileTime accepts a creation time on
// this platform.
func CanSetCreationTime() bool {
	return true
}

// setTimes writes every requested timestamp with one setattrlist(2) call.
// Attribute values are packed in ascending bit order: creation, then
// modification, then access.
func setTimes(path string, creation, access, write *filetime.FileTime) error {
	attrs := unix.Attrlist{Bitmapcount: unix.ATTR_BIT_MAP_COUNT}
	var buf []byte

	for _, f := range []struct {
		bit uint32
		ft  *filetime.FileTime
	}{
		{unix.ATTR_CMN_CRTIME, creation},
		{unix.ATTR_CMN_MODTIME, write},
		{unix.ATTR_CMN_ACCTIME, access},
	} {
		if f.ft == nil {
			continue
		}
		ts, err := unix.TimeToTimespec(f.ft.Time())
		if err != nil {
			return err
		}
		attrs.Commonattr |= f.bit
		buf = append(buf, unsafe.Slice((*byte)(unsafe.Pointer(&ts)), unsafe.Sizeof(ts))...)
	}
	if len(buf) == 0 {
		return nil
	}

	return unix.Setattrlist(path, &attrs, buf, 0)
}
