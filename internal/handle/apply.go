// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handle

import (
	"strings"

	"github.com/hashicorp/go-filetimes/internal/filetime"
)

// Request is a timestamp update. A nil field leaves that timestamp as it is
// on disk.
type Request struct {
	Creation   *filetime.FileTime
	LastAccess *filetime.FileTime
	LastWrite  *filetime.FileTime
}

// Empty reports whether the request changes nothing.
func (r Request) Empty() bool {
	return r.Creation == nil && r.LastAccess == nil && r.LastWrite == nil
}

// Fields lists the timestamps the request sets, for log output.
func (r Request) Fields() string {
	var fields []string
	if r.Creation != nil {
		fields = append(fields, "creation")
	}
	if r.LastAccess != nil {
		fields = append(fields, "access")
	}
	if r.LastWrite != nil {
		fields = append(fields, "write")
	}
	return strings.Join(fields, ",")
}

// Apply issues req against the handle as a single OS call, so that all the
// requested timestamps change together. An empty request is not sent.
func (h *Handle) Apply(req Request) error {
	if h.released {
		return &OpError{Op: OpSetTime, Err: ErrReleased}
	}
	if req.Empty() {
		return nil
	}

	if err := h.sys.SetFileTime(h.fd, req.Creation, req.LastAccess, req.LastWrite); err != nil {
		return opError(OpSetTime, err)
	}
	return nil
}
