// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build windows

package handle

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

const (
	writeAttributesAccess = windows.FILE_WRITE_ATTRIBUTES
	shareAll              = windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE
)

// CanSetCreationTime reports whether SetFileTime accepts a creation time on
// this platform.
func CanSetCreationTime() bool {
	return true
}

// Native returns the System backed by the Win32 API.
func Native() System {
	return nativeSystem{}
}

type nativeSystem struct{}

func (nativeSystem) Stat(path string) (Attributes, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Attributes{}, err
	}

	var data windows.Win32FileAttributeData
	err = windows.GetFileAttributesEx(p, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data)))
	if err != nil {
		return Attributes{}, err
	}

	return Attributes{
		Dir:        data.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0,
		Creation:   fromFiletime(data.CreationTime),
		LastAccess: fromFiletime(data.LastAccessTime),
		LastWrite:  fromFiletime(data.LastWriteTime),
	}, nil
}

func (nativeSystem) Open(path string, dir bool) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	// Directories can only be opened with backup semantics.
	flags := uint32(windows.FILE_ATTRIBUTE_NORMAL)
	if dir {
		flags = windows.FILE_FLAG_BACKUP_SEMANTICS
	}

	h, err := windows.CreateFile(p, writeAttributesAccess, shareAll, nil, windows.OPEN_EXISTING, flags, 0)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func (nativeSystem) SetFileTime(fd uintptr, creation, access, write *filetime.FileTime) error {
	return windows.SetFileTime(windows.Handle(fd), toFiletime(creation), toFiletime(access), toFiletime(write))
}

func (nativeSystem) Close(fd uintptr) error {
	return windows.CloseHandle(windows.Handle(fd))
}

// toFiletime maps an absent timestamp to a nil pointer, which SetFileTime
// leaves untouched.
func toFiletime(ft *filetime.FileTime) *windows.Filetime {
	if ft == nil {
		return nil
	}
	low, high := ft.Parts()
	return &windows.Filetime{LowDateTime: low, HighDateTime: high}
}

func fromFiletime(ft windows.Filetime) filetime.FileTime {
	return filetime.FromParts(ft.LowDateTime, ft.HighDateTime)
}
