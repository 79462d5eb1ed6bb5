// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
)

// Herk performs the Hermitian rank-k update
//
//	C := alpha * A * Aᴴ + beta * C   if trans == blas.NoTrans,
//	C := alpha * Aᴴ * A + beta * C   if trans == blas.ConjTrans,
//
// on flat storage, where C is an n×n Hermitian matrix of which only the
// triangle selected by uplo is referenced (blas.All selecting both, with
// the second triangle materialized by mirroring), and A is n×k for
// NoTrans and k×n otherwise.
//
// A row-major call is normalized to an equivalent column-major
// computation by swapping the referenced triangle and the transpose
// mode: a row-major matrix reread as column-major is its transpose, and
// conjugate-transposing the whole update maps AAᴴ to AᴴA and one
// triangle of C to the other. alpha and beta are real, so conjugating
// alpha, the remaining step of the general transformation, is the
// identity. Both layouts then execute the same kernel.
func Herk[T scalar.Scalar](layout Layout, uplo blas.Uplo, trans blas.Transpose, n, k int, alpha float64, a []T, lda int, beta float64, c []T, ldc int) {
	switch {
	case layout != RowMajor && layout != ColMajor:
		panic(badLayout)
	case uplo != blas.Upper && uplo != blas.Lower && uplo != blas.All:
		panic(badUplo)
	case trans != blas.NoTrans && trans != blas.Trans && trans != blas.ConjTrans:
		panic(badTrans)
	case trans == blas.Trans && scalar.IsComplex[T]():
		panic(badTrans)
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
	}
	if trans == blas.Trans {
		trans = blas.ConjTrans
	}
	if n == 0 {
		return
	}

	// Logical row/column counts of A as declared by the caller.
	ar, ac := n, k
	if trans != blas.NoTrans {
		ar, ac = k, n
	}

	if layout == RowMajor {
		switch uplo {
		case blas.Upper:
			uplo = blas.Lower
		case blas.Lower:
			uplo = blas.Upper
		}
		if trans == blas.NoTrans {
			trans = blas.ConjTrans
		} else {
			trans = blas.NoTrans
		}
		// The same flat data reread column-major: dimensions swap.
		av := matrixView(ColMajor, a, ac, ar, lda, badLdA, shortA)
		cv := matrixView(ColMajor, c, n, n, ldc, badLdC, shortC)
		gblas.Herk(uplo, trans, alpha, av, beta, cv)
		return
	}

	av := matrixView(ColMajor, a, ar, ac, lda, badLdA, shortA)
	cv := matrixView(ColMajor, c, n, n, ldc, badLdC, shortC)
	gblas.Herk(uplo, trans, alpha, av, beta, cv)
}
