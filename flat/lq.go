// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"github.com/Xuan-1998/tlapack/glapack"
	"github.com/Xuan-1998/tlapack/scalar"
)

// Gelqf computes the LQ factorization of the m×n matrix stored flat in
// a with the given layout and leading dimension. On return the lower
// triangle of the leading min(m,n) columns of a holds L, and the rows
// above the diagonal hold the elementary reflectors whose product
// defines Q. tau must have length at least min(m,n).
//
// opts may be nil, in which case the default block size is used and
// workspace is allocated internally. See glapack.Gelqf for the blocking
// and workspace rules.
func Gelqf[T scalar.Scalar](layout Layout, m, n int, a []T, lda int, tau []T, opts *glapack.LQOpts[T]) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	}
	av := matrixView(layout, a, m, n, lda, badLdA, shortA)
	if len(tau) < min(m, n) {
		panic(shortTau)
	}
	glapack.Gelqf(av, tau[:min(m, n)], opts)
}

// Gerqf computes the RQ factorization of the m×n matrix stored flat in
// a with the given layout and leading dimension. On return, if m <= n,
// the rightmost m×m block of a holds R in its upper triangle; the rows
// to the left of each diagonal of R hold the elementary reflectors
// whose product defines Q. tau must have length at least min(m,n).
//
// opts may be nil; see glapack.Gerqf.
func Gerqf[T scalar.Scalar](layout Layout, m, n int, a []T, lda int, tau []T, opts *glapack.LQOpts[T]) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	}
	av := matrixView(layout, a, m, n, lda, badLdA, shortA)
	if len(tau) < min(m, n) {
		panic(shortTau)
	}
	glapack.Gerqf(av, tau[:min(m, n)], opts)
}
