// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package filetimes sets the creation, last-access and last-write times of
// files and directories.
//
// Paths are used exactly as given. Long paths must already carry whatever
// prefix the platform needs (for example \\?\ on Windows). Each operation
// opens its own handle with attribute-write access only, shares the entry
// with every other reader and writer, and closes the handle before
// returning. Nothing is retried.
//
// Failures from the operating system are returned as *Error, whose Kind can
// be tested with errors.Is.
package filetimes

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hashicorp/go-filetimes/internal/filetime"
	"github.com/hashicorp/go-filetimes/internal/handle"
	"github.com/hashicorp/go-filetimes/version"
)

// Times holds the three timestamps of an entry. A timestamp the platform
// does not record is the zero time.Time.
type Times struct {
	Creation   time.Time
	LastAccess time.Time
	LastWrite  time.Time
}

// Update selects the timestamps to change. Nil fields are left as they are
// on disk.
type Update struct {
	Creation   *time.Time
	LastAccess *time.Time
	LastWrite  *time.Time
}

func (u Update) request() (handle.Request, error) {
	var req handle.Request
	var err error
	if req.Creation, err = convert("creation", u.Creation); err != nil {
		return req, err
	}
	if req.LastAccess, err = convert("last access", u.LastAccess); err != nil {
		return req, err
	}
	if req.LastWrite, err = convert("last write", u.LastWrite); err != nil {
		return req, err
	}
	return req, nil
}

func convert(name string, t *time.Time) (*filetime.FileTime, error) {
	if t == nil {
		return nil, nil
	}
	ft, err := filetime.FromTime(*t)
	if err != nil {
		return nil, fmt.Errorf("invalid %s time %s: %w", name, t.Format(time.RFC3339Nano), err)
	}
	return &ft, nil
}

// Setter changes file times. Its zero value is not usable; create one with
// NewSetter. A Setter holds no per-call state and is safe for concurrent
// use.
type Setter struct {
	sys    handle.System
	logger zerolog.Logger
}

// SetterOption configures a Setter.
type SetterOption func(*Setter) error

// WithLogger sets the logger used for debug output and for failures to
// release a handle, which are never returned to the caller. The default
// discards everything.
func WithLogger(logger zerolog.Logger) SetterOption {
	return func(s *Setter) error {
		s.logger = logger
		return nil
	}
}

// NewSetter creates a Setter that acts on the local filesystem.
func NewSetter(options ...SetterOption) (*Setter, error) {
	s := &Setter{
		sys:    handle.Native(),
		logger: zerolog.Nop(),
	}

	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.logger = s.logger.With().Str("version", version.String()).Logger()
	return s, nil
}

var defaultSetter = &Setter{
	sys:    handle.Native(),
	logger: zerolog.Nop(),
}

// SetAllTimes sets all three timestamps of the entry at path in a single
// update: either all of them change or none do.
func (s *Setter) SetAllTimes(path string, creation, lastAccess, lastWrite time.Time) error {
	return s.SetTimes(path, Update{
		Creation:   &creation,
		LastAccess: &lastAccess,
		LastWrite:  &lastWrite,
	})
}

// SetCreationTime sets the creation time of the entry at path.
func (s *Setter) SetCreationTime(path string, t time.Time) error {
	return s.SetTimes(path, Update{Creation: &t})
}

// SetLastWriteTime sets the last write time of the entry at path.
func (s *Setter) SetLastWriteTime(path string, t time.Time) error {
	return s.SetTimes(path, Update{LastWrite: &t})
}

// SetLastAccessTime sets the last access time of the entry at path.
func (s *Setter) SetLastAccessTime(path string, t time.Time) error {
	return s.SetTimes(path, Update{LastAccess: &t})
}

// SetTimes applies u to the entry at path as one update. Times are stored
// with 100ns resolution. An Update with no fields set does nothing, and
// does not check that path exists.
func (s *Setter) SetTimes(path string, u Update) error {
	if path == "" {
		return ErrEmptyPath
	}

	req, err := u.request()
	if err != nil {
		return err
	}
	if req.Empty() {
		return nil
	}

	h, err := handle.Acquire(s.sys, path, handle.Detect)
	if err != nil {
		return translate(path, err)
	}
	defer s.release(h)

	// The error is translated before the deferred release runs, so a failing
	// close can never replace the code of the failing update.
	if err := h.Apply(req); err != nil {
		return translate(path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Str("fields", req.Fields()).
		Bool("dir", h.IsDir()).
		Msg("updated file times")
	return nil
}

// GetTimes reads the timestamps of the entry at path.
func (s *Setter) GetTimes(path string) (Times, error) {
	if path == "" {
		return Times{}, ErrEmptyPath
	}

	attrs, err := handle.Stat(s.sys, path)
	if err != nil {
		return Times{}, translate(path, err)
	}

	return Times{
		Creation:   timeOf(attrs.Creation),
		LastAccess: timeOf(attrs.LastAccess),
		LastWrite:  timeOf(attrs.LastWrite),
	}, nil
}

func (s *Setter) release(h *handle.Handle) {
	if err := h.Release(); err != nil {
		s.logger.Warn().
			Err(err).
			Str("path", h.Path()).
			Msg("failed to release handle")
	}
}

func timeOf(ft filetime.FileTime) time.Time {
	if !ft.IsSet() {
		return time.Time{}
	}
	return ft.Time()
}

// CanSetCreationTime reports whether creation times can be set on this
// platform. Where they cannot, any update that includes a creation time
// fails with NotSupported and changes nothing.
func CanSetCreationTime() bool {
	return handle.CanSetCreationTime()
}

// SetAllTimes sets all three timestamps of the entry at path in a single
// update: either all of them change or none do.
func SetAllTimes(path string, creation, lastAccess, lastWrite time.Time) error {
	return defaultSetter.SetAllTimes(path, creation, lastAccess, lastWrite)
}

// SetCreationTime sets the creation time of the entry at path.
func SetCreationTime(path string, t time.Time) error {
	return defaultSetter.SetCreationTime(path, t)
}

// SetLastWriteTime sets the last write time of the entry at path.
func SetLastWriteTime(path string, t time.Time) error {
	return defaultSetter.SetLastWriteTime(path, t)
}

// SetLastAccessTime sets the last access time of the entry at path.
func SetLastAccessTime(path string, t time.Time) error {
	return defaultSetter.SetLastAccessTime(path, t)
}

// SetTimes applies u to the entry at path as one update.
func SetTimes(path string, u Update) error {
	return defaultSetter.SetTimes(path, u)
}

// GetTimes reads the timestamps of the entry at path.
func GetTimes(path string) (Times, error) {
	return defaultSetter.GetTimes(path)
}
