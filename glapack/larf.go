// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Larf applies the elementary reflector H = I - tau * v * vᴴ to the
// matrix C, from the left
//
//	C := H * C
//
// or from the right
//
//	C := C * H.
//
// v is read as stored; its length must equal the row count of C when
// side == blas.Left and the column count when side == blas.Right.
//
// work is scratch of length at least the other extent of C (its column
// count for the left side, its row count for the right side); a nil or
// short work causes an internal allocation.
//
// Trailing zero elements of v and zero fringes of C are skipped, so
// callers may pass views wider than the reflector's support.
func Larf[T scalar.Scalar](side blas.Side, v view.Vector[T], tau T, c view.Matrix[T], work []T) {
	if side != blas.Left && side != blas.Right {
		panic(badSide)
	}
	m, n := c.Dims()
	if side == blas.Left && v.Len() != m || side == blas.Right && v.Len() != n {
		panic(badShape)
	}
	var zero T
	if tau == zero {
		return
	}

	// Restrict to the submatrix that the reflector actually touches.
	lastv := ilav(v) + 1
	var lastc int
	if lastv > 0 {
		if side == blas.Left {
			lastc = ilalc(c.Slice(0, lastv, 0, n)) + 1
		} else {
			lastc = ilalr(c.Slice(0, m, 0, lastv)) + 1
		}
	}
	if lastv == 0 || lastc == 0 {
		return
	}
	vv := v.Slice(0, lastv)

	if side == blas.Left {
		// w = Cᴴ*v, then C -= tau*v*wᴴ.
		cc := c.Slice(0, lastv, 0, lastc)
		if len(work) < lastc {
			work = make([]T, lastc)
		}
		w := view.VectorFrom(work, lastc, 1)
		gblas.Gemv(blas.ConjTrans, scalar.FromReal[T](1), cc, vv, zero, w)
		gblas.Gerc(-tau, vv, w, cc)
		return
	}
	// w = C*v, then C -= tau*w*vᴴ.
	cc := c.Slice(0, lastc, 0, lastv)
	if len(work) < lastc {
		work = make([]T, lastc)
	}
	w := view.VectorFrom(work, lastc, 1)
	gblas.Gemv(blas.NoTrans, scalar.FromReal[T](1), cc, vv, zero, w)
	gblas.Gerc(-tau, w, vv, cc)
}
