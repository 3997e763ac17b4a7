// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filetimes

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/hashicorp/go-filetimes/internal/handle"
)

func TestError_Error(t *testing.T) {
	useFakeCodes(t)

	for _, c := range []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "known code",
			err:      &handle.OpError{Op: handle.OpOpen, Code: fakeSharing, Err: fakeSharing},
			expected: fmt.Sprintf("open /data/f: sharing violation: %s", fakeSharing),
		},
		{
			name:     "unknown code",
			err:      &handle.OpError{Op: handle.OpSetTime, Code: syscall.Errno(424242), Err: syscall.Errno(424242)},
			expected: fmt.Sprintf("settime /data/f: unknown error (code 424242): %s", syscall.Errno(424242)),
		},
		{
			name:     "no code",
			err:      &handle.OpError{Op: handle.OpOpen, Err: errors.ErrUnsupported},
			expected: "open /data/f: not supported: unsupported operation",
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := translate("/data/f", c.err).Error()
			if got != c.expected {
				t.Fatalf("expected %q, got %q", c.expected, got)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	useFakeCodes(t)

	err := error(translate("f", &handle.OpError{Op: handle.OpStat, Code: fakeNotFound, Err: fakeNotFound}))

	if !errors.Is(err, NotFound) {
		t.Fatalf("expected %v to be NotFound", err)
	}
	if errors.Is(err, AccessDenied) {
		t.Fatalf("expected %v not to be AccessDenied", err)
	}
	if !errors.Is(err, fakeNotFound) {
		t.Fatalf("expected %v to wrap the raw code", err)
	}

	wrapped := fmt.Errorf("restoring times: %w", err)
	if !errors.Is(wrapped, NotFound) {
		t.Fatalf("expected %v to be NotFound", wrapped)
	}
	var ftErr *Error
	if !errors.As(wrapped, &ftErr) || ftErr.Path != "f" {
		t.Fatalf("expected to find *Error for f in %v", wrapped)
	}
}

func TestTranslate(t *testing.T) {
	useFakeCodes(t)

	for _, c := range []struct {
		name string
		err  error
		op   string
		code syscall.Errno
		kind Kind
	}{
		{
			name: "op error",
			err:  &handle.OpError{Op: handle.OpOpen, Code: fakeSharing, Err: fakeSharing},
			op:   handle.OpOpen,
			code: fakeSharing,
			kind: SharingViolation,
		},
		{
			name: "bare errno",
			err:  fmt.Errorf("wrapped: %w", fakeBadHandle),
			op:   handle.OpSetTime,
			code: fakeBadHandle,
			kind: InvalidHandle,
		},
		{
			name: "released",
			err:  &handle.OpError{Op: handle.OpSetTime, Err: handle.ErrReleased},
			op:   handle.OpSetTime,
			kind: InvalidHandle,
		},
		{
			name: "unsupported",
			err:  &handle.OpError{Op: handle.OpOpen, Err: errors.ErrUnsupported},
			op:   handle.OpOpen,
			kind: NotSupported,
		},
		{
			name: "no code",
			err:  errors.New("boom"),
			op:   handle.OpSetTime,
			kind: Unknown,
		},
		{
			name: "unmapped code",
			err:  &handle.OpError{Op: handle.OpStat, Code: syscall.Errno(424242), Err: syscall.Errno(424242)},
			op:   handle.OpStat,
			code: syscall.Errno(424242),
			kind: Unknown,
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := translate("p", c.err)
			if got.Op != c.op {
				t.Errorf("expected op %q, got %q", c.op, got.Op)
			}
			if got.Code != c.code {
				t.Errorf("expected code %d, got %d", c.code, got.Code)
			}
			if got.Kind != c.kind {
				t.Errorf("expected kind %s, got %s", c.kind, got.Kind)
			}
			if got.Path != "p" {
				t.Errorf("expected path p, got %q", got.Path)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Fatalf("expected Kind(99), got %q", got)
	}
	if got := ReadOnly.Error(); got != "read-only" {
		t.Fatalf("expected read-only, got %q", got)
	}
}
