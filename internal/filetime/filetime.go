// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package filetime implements the native timestamp encoding used by the
// file time setters: a count of 100-nanosecond intervals since
// 1601-01-01T00:00:00Z, as stored in a Windows FILETIME.
package filetime

import (
	"errors"
	"math"
	"time"
)

const (
	ticksPerSecond = 10_000_000
	nsPerTick      = 100

	// Seconds between 1601-01-01 and 1970-01-01.
	epochOffset = 11644473600

	maxSeconds = math.MaxInt64 / ticksPerSecond
)

// ErrOutOfRange is returned for instants that cannot be encoded as a
// FileTime.
var ErrOutOfRange = errors.New("time is outside the range of native file times")

// FileTime is a point in time in 100ns ticks since 1601-01-01 UTC.
//
// The zero value is reserved. SetFileTime reads a zero FILETIME as "leave
// this attribute unchanged", so FromTime never produces it.
type FileTime int64

// FromTime converts t, truncating to 100ns resolution.
func FromTime(t time.Time) (FileTime, error) {
	sec := t.Unix() + epochOffset
	if sec < 0 || sec >= maxSeconds {
		return 0, ErrOutOfRange
	}

	ft := FileTime(sec*ticksPerSecond + int64(t.Nanosecond())/nsPerTick)
	if ft <= 0 {
		return 0, ErrOutOfRange
	}
	return ft, nil
}

// FromUnix converts a seconds/nanoseconds pair as returned by stat calls.
func FromUnix(sec, nsec int64) (FileTime, error) {
	return FromTime(time.Unix(sec, nsec))
}

// FromParts assembles a FileTime from the two halves of a FILETIME.
func FromParts(low, high uint32) FileTime {
	return FileTime(int64(high)<<32 | int64(low))
}

// Parts splits ft into the low and high halves of a FILETIME.
func (ft FileTime) Parts() (low, high uint32) {
	return uint32(uint64(ft)), uint32(uint64(ft) >> 32)
}

// Unix returns ft as seconds and nanoseconds since the Unix epoch.
func (ft FileTime) Unix() (sec, nsec int64) {
	sec = int64(ft)/ticksPerSecond - epochOffset
	nsec = int64(ft) % ticksPerSecond * nsPerTick
	return sec, nsec
}

// Time returns ft as a UTC time.Time.
func (ft FileTime) Time() time.Time {
	return time.Unix(ft.Unix()).UTC()
}

// IsSet reports whether ft holds a timestamp rather than the reserved zero.
func (ft FileTime) IsSet() bool {
	return ft > 0
}

// Truncate rounds t down to the resolution a FileTime can hold.
func Truncate(t time.Time) time.Time {
	return t.Truncate(nsPerTick * time.Nanosecond).UTC()
}
