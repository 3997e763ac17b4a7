// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build !(unix || windows)

package filetimes

// No operating system error numbers are mapped on this platform; every
// code translates to Unknown.
var codeKinds []codeKind
