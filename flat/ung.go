// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"github.com/Xuan-1998/tlapack/glapack"
	"github.com/Xuan-1998/tlapack/scalar"
)

// Unglq generates the m×n matrix Q with orthonormal rows defined by the
// k = len(tau) elementary reflectors returned by Gelqf in the first k
// rows of a, overwriting a with Q. k <= m <= n is required.
func Unglq[T scalar.Scalar](layout Layout, m, n int, a []T, lda int, tau []T) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case len(tau) > m:
		panic(longTau)
	}
	av := matrixView(layout, a, m, n, lda, badLdA, shortA)
	glapack.Ungl2(av, tau, nil)
}

// Ungrq generates the m×n matrix Q with orthonormal rows defined by the
// k = len(tau) elementary reflectors returned by Gerqf in the last k
// rows of a, overwriting a with Q. k <= m <= n is required.
func Ungrq[T scalar.Scalar](layout Layout, m, n int, a []T, lda int, tau []T) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case len(tau) > m:
		panic(longTau)
	}
	av := matrixView(layout, a, m, n, lda, badLdA, shortA)
	glapack.Ungr2(av, tau, nil)
}
