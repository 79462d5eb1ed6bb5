// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Herk performs the Hermitian rank-k update
//
//	C := alpha * A * Aᴴ + beta * C   if trans == blas.NoTrans,
//	C := alpha * Aᴴ * A + beta * C   if trans == blas.ConjTrans,
//
// where alpha and beta are real scalars, C is an n×n Hermitian matrix
// and A is n×k (NoTrans) or k×n (ConjTrans).
//
// uplo selects which triangle of C is referenced and updated. With
// blas.Upper or blas.Lower the opposite triangle is never touched. With
// blas.All the selected computation is mirrored into the other triangle
// after the sweep, leaving a fully materialized Hermitian result.
//
// Every diagonal entry of C is mathematically real; Herk stores only the
// real part of each diagonal result so that no spurious imaginary
// round-off accumulates. When alpha is zero, A is never read: the
// referenced triangle is zero-filled (beta == 0), left untouched
// (beta == 1) or scaled in place with the diagonal forced real.
//
// blas.Trans is accepted as a synonym for blas.ConjTrans over the reals
// only.
func Herk[T scalar.Scalar](uplo blas.Uplo, trans blas.Transpose, alpha float64, a view.Matrix[T], beta float64, c view.Matrix[T]) {
	switch {
	case uplo != blas.Upper && uplo != blas.Lower && uplo != blas.All:
		panic(badUplo)
	case trans != blas.NoTrans && trans != blas.Trans && trans != blas.ConjTrans:
		panic(badTranspose)
	case trans == blas.Trans && scalar.IsComplex[T]():
		panic(badTranspose)
	}
	var n, k int
	if trans == blas.NoTrans {
		n, k = a.Dims()
	} else {
		k, n = a.Dims()
	}
	cm, cn := c.Dims()
	if cm != cn {
		panic(cNotSquare)
	}
	if cm != n {
		panic(badShape)
	}

	if n == 0 {
		return
	}

	if alpha == 0 {
		scaleHermTriangle(uplo, beta, c)
		return
	}

	if trans == blas.NoTrans {
		// C := alpha*A*Aᴴ + beta*C.
		if uplo != blas.Lower {
			for j := 0; j < n; j++ {
				scaleHermColumn(beta, c, 0, j)
				for l := 0; l < k; l++ {
					ajl := a.At(j, l)
					t := scalar.FromReal[T](alpha) * scalar.Conj(ajl)
					for i := 0; i < j; i++ {
						c.Set(i, j, c.At(i, j)+a.At(i, l)*t)
					}
					c.Set(j, j, c.At(j, j)+scalar.FromReal[T](scalar.Real(ajl*t)))
				}
			}
		} else {
			for j := 0; j < n; j++ {
				scaleHermColumn(beta, c, j+1, j)
				for l := 0; l < k; l++ {
					ajl := a.At(j, l)
					t := scalar.FromReal[T](alpha) * scalar.Conj(ajl)
					c.Set(j, j, c.At(j, j)+scalar.FromReal[T](scalar.Real(ajl*t)))
					for i := j + 1; i < n; i++ {
						c.Set(i, j, c.At(i, j)+a.At(i, l)*t)
					}
				}
			}
		}
	} else {
		// C := alpha*Aᴴ*A + beta*C.
		for j := 0; j < n; j++ {
			var lo, hi int
			if uplo != blas.Lower {
				lo, hi = 0, j
			} else {
				lo, hi = j+1, n
			}
			for i := lo; i < hi; i++ {
				var sum T
				for l := 0; l < k; l++ {
					sum += scalar.Conj(a.At(l, i)) * a.At(l, j)
				}
				if beta == 0 {
					c.Set(i, j, scalar.FromReal[T](alpha)*sum)
				} else {
					c.Set(i, j, scalar.FromReal[T](alpha)*sum+scalar.FromReal[T](beta)*c.At(i, j))
				}
			}
			var sum float64
			for l := 0; l < k; l++ {
				re, im := scalar.Real(a.At(l, j)), scalar.Imag(a.At(l, j))
				sum += re*re + im*im
			}
			if beta == 0 {
				c.Set(j, j, scalar.FromReal[T](alpha*sum))
			} else {
				c.Set(j, j, scalar.FromReal[T](alpha*sum+beta*scalar.Real(c.At(j, j))))
			}
		}
	}

	if uplo == blas.All {
		for j := 0; j < n; j++ {
			for i := j + 1; i < n; i++ {
				c.Set(i, j, scalar.Conj(c.At(j, i)))
			}
		}
	}
}

// scaleHermColumn applies the beta pre-scaling to column j of the
// referenced triangle: off-diagonal rows [lo, j) or (j, hi) together
// with the diagonal entry, which is forced real. For blas.All the
// strictly-lower part is produced by the mirror pass instead, so the
// upper-triangle bounds are used.
func scaleHermColumn[T scalar.Scalar](beta float64, c view.Matrix[T], lo, j int) {
	n, _ := c.Dims()
	switch beta {
	case 0:
		var zero T
		if lo <= j {
			for i := lo; i < j; i++ {
				c.Set(i, j, zero)
			}
		} else {
			for i := lo; i < n; i++ {
				c.Set(i, j, zero)
			}
		}
		c.Set(j, j, zero)
	case 1:
		c.Set(j, j, scalar.FromReal[T](scalar.Real(c.At(j, j))))
	default:
		b := scalar.FromReal[T](beta)
		if lo <= j {
			for i := lo; i < j; i++ {
				c.Set(i, j, b*c.At(i, j))
			}
		} else {
			for i := lo; i < n; i++ {
				c.Set(i, j, b*c.At(i, j))
			}
		}
		c.Set(j, j, scalar.FromReal[T](beta*scalar.Real(c.At(j, j))))
	}
}

// scaleHermTriangle handles the alpha == 0 degenerate paths without
// reading A.
func scaleHermTriangle[T scalar.Scalar](uplo blas.Uplo, beta float64, c view.Matrix[T]) {
	n, _ := c.Dims()
	if beta == 1 {
		return
	}
	var zero T
	b := scalar.FromReal[T](beta)
	for j := 0; j < n; j++ {
		var lo, hi int
		switch uplo {
		case blas.Upper:
			lo, hi = 0, j+1
		case blas.Lower:
			lo, hi = j, n
		default: // blas.All
			lo, hi = 0, n
		}
		for i := lo; i < hi; i++ {
			switch {
			case beta == 0:
				c.Set(i, j, zero)
			case i == j:
				c.Set(j, j, scalar.FromReal[T](beta*scalar.Real(c.At(j, j))))
			default:
				c.Set(i, j, b*c.At(i, j))
			}
		}
	}
}
