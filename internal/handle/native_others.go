// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build !(windows || linux || darwin || freebsd)

package handle

import (
	"errors"
	"os"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// CanSetCreationTime reports whether SetFileTime accepts a creation time on
// this platform.
func CanSetCreationTime() bool {
	return false
}

// Native returns a System that can report entry metadata but not change
// it. Updating timestamps is only available on Windows, Linux, macOS and
// FreeBSD as of now.
func Native() System {
	return nativeSystem{}
}

type nativeSystem struct{}

func (nativeSystem) Stat(path string) (Attributes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attributes{}, err
	}

	write, err := filetime.FromTime(info.ModTime())
	if err != nil {
		write = 0
	}
	return Attributes{Dir: info.IsDir(), LastWrite: write}, nil
}

func (nativeSystem) Open(path string, dir bool) (uintptr, error) {
	return 0, errors.ErrUnsupported
}

func (nativeSystem) SetFileTime(fd uintptr, creation, access, write *filetime.FileTime) error {
	return errors.ErrUnsupported
}

func (nativeSystem) Close(fd uintptr) error {
	return errors.ErrUnsupported
}
