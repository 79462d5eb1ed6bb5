// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Gerqf computes the RQ factorization A = R * Q of the m×n matrix A
// using a blocked algorithm.
//
// The matrix is processed in panels of at most opts.BlockSize rows,
// sweeping from the bottom edge upward with indexing mirrored from the
// far corner. Each panel is factorized in place by Gerq2; when rows
// remain above the panel, the panel's reflector product is summarized
// into a compact triangular factor (Larft, backward direction) and
// applied to those rows in one blocked update (Larfb).
//
// The storage convention of A and tau on exit is that of Gerq2.
//
// Scratch is taken from opts.Work when it is at least
// GerqfWorkInfo(m, n, nb).Size() long, and allocated internally
// otherwise. A nil opts selects the defaults.
func Gerqf[T scalar.Scalar](a view.Matrix[T], tau []T, opts *LQOpts[T]) {
	m, n := a.Dims()
	k := min(m, n)
	if len(tau) < k {
		panic(shortTau)
	}
	if k == 0 {
		return
	}
	nb := min(opts.blockSize(), k)
	wi := lqWorkInfo(m, n, nb)
	work := opts.work(wi)

	for j2 := 0; j2 < k; j2 += nb {
		ib := min(nb, k-j2)
		j := m - j2 - ib
		// Panel rows hold reflectors k-j2-ib ... k-j2-1, acting on the
		// leading n-j2 columns.
		panel := a.Slice(j, j+ib, 0, n-j2)
		Gerq2(panel, tau[k-j2-ib:k-j2], work[:max(ib-1, 0)])

		if j > 0 {
			t := view.MatrixFrom(work[wi.Size()-nb*nb:], ib, ib, nb)
			Larft(lapack.Backward, lapack.RowWise, panel, tau[k-j2-ib:k-j2], t)

			above := a.Slice(0, j, 0, n-j2)
			w := view.MatrixFrom(work[:j*ib], j, ib, ib)
			Larfb(blas.Right, blas.NoTrans, lapack.Backward, lapack.RowWise, panel, t, above, w)
		}
	}
}
