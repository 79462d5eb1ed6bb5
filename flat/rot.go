// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Rot applies the plane rotation
//
//	[ x ]   [  c        s ] [ x ]
//	[ y ] = [ -conj(s)  c ] [ y ]
//
// to the n-element vectors stored in x and y with increments incx and
// incy. A negative increment traverses the corresponding vector in
// reverse, with its element 0 at the end of the addressed range.
func Rot[T scalar.Scalar](n int, x []T, incx int, y []T, incy int, c float64, s T) {
	switch {
	case n < 0:
		panic(nLT0)
	case incx == 0 || incy == 0:
		panic(badInc)
	}
	if n == 0 {
		return
	}
	if spanLen(n, incx) > len(x) {
		panic(shortX)
	}
	if spanLen(n, incy) > len(y) {
		panic(shortY)
	}
	gblas.Rot(view.VectorFrom(x, n, incx), view.VectorFrom(y, n, incy), c, s)
}

// spanLen is the minimum slice length addressed by n elements at the
// given nonzero increment.
func spanLen(n, inc int) int {
	if inc < 0 {
		inc = -inc
	}
	return (n-1)*inc + 1
}
