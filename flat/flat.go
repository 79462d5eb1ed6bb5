// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flat exposes the kernels of gblas and glapack over raw slices
// with explicit layout flags, leading dimensions and vector increments.
//
// Unlike the generic entry points, the functions here validate all shape
// preconditions and fail fast, before constructing views over the
// caller's storage and delegating. A negative vector increment means
// reverse traversal, following the BLAS convention.
package flat

import (
	"github.com/Xuan-1998/tlapack/view"
)

// Layout identifies the memory traversal order of a flat matrix
// argument.
type Layout byte

const (
	RowMajor Layout = 'R'
	ColMajor Layout = 'C'
)

const (
	badLayout = "flat: illegal layout"
	badUplo   = "flat: illegal triangle"
	badTrans  = "flat: illegal transpose"
	badLdA    = "flat: bad leading dimension of A"
	badLdC    = "flat: bad leading dimension of C"
	badInc    = "flat: zero vector increment"
	mLT0      = "flat: m < 0"
	nLT0      = "flat: n < 0"
	kLT0      = "flat: k < 0"
	shortA    = "flat: insufficient length of a"
	shortC    = "flat: insufficient length of c"
	shortX    = "flat: insufficient length of x"
	shortY    = "flat: insufficient length of y"
	shortTau  = "flat: insufficient length of tau"
	longTau   = "flat: len(tau) > m"
)

// matrixView builds the r×c view over data for the given layout and
// leading dimension, after validating both against the shape.
func matrixView[T any](layout Layout, data []T, r, c, ld int, errLd, errShort string) view.Matrix[T] {
	var minLd, minLen int
	switch layout {
	case RowMajor:
		minLd = max(1, c)
		minLen = (r-1)*ld + c
	case ColMajor:
		minLd = max(1, r)
		minLen = (c-1)*ld + r
	default:
		panic(badLayout)
	}
	if ld < minLd {
		panic(errLd)
	}
	if r > 0 && c > 0 && len(data) < minLen {
		panic(errShort)
	}
	if layout == RowMajor {
		return view.MatrixFrom(data, r, c, ld)
	}
	return view.ColMajorFrom(data, r, c, ld)
}
