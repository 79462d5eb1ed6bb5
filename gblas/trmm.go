// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Trmm computes, in place,
//
//	B := alpha * op(A) * B   if side == blas.Left,
//	B := alpha * B * op(A)   if side == blas.Right,
//
// where A is an upper or lower triangular matrix whose diagonal is taken
// as all ones when diag == blas.Unit, and op(A) is A, Aᵀ or Aᴴ according
// to trans. Only the triangle of A selected by uplo is referenced.
func Trmm[T scalar.Scalar](side blas.Side, uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, alpha T, a, b view.Matrix[T]) {
	switch {
	case side != blas.Left && side != blas.Right:
		panic(badSide)
	case uplo != blas.Upper && uplo != blas.Lower:
		panic(badUplo)
	case trans != blas.NoTrans && trans != blas.Trans && trans != blas.ConjTrans:
		panic(badTranspose)
	case diag != blas.Unit && diag != blas.NonUnit:
		panic(badDiag)
	}
	ar, ac := a.Dims()
	m, n := b.Dims()
	if ar != ac {
		panic(aNotSquare)
	}
	if (side == blas.Left && ar != m) || (side == blas.Right && ar != n) {
		panic(badShape)
	}

	unit := diag == blas.Unit
	conj := trans == blas.ConjTrans
	cj := func(v T) T {
		if conj {
			return scalar.Conj(v)
		}
		return v
	}
	diagAt := func(i int) T {
		if unit {
			return scalar.FromReal[T](1)
		}
		return cj(a.At(i, i))
	}

	if side == blas.Left {
		upper := uplo == blas.Upper
		if trans == blas.NoTrans {
			if upper {
				// B(i,j) depends on rows l ≥ i, so sweep i ascending.
				for i := 0; i < m; i++ {
					for j := 0; j < n; j++ {
						sum := diagAt(i) * b.At(i, j)
						for l := i + 1; l < m; l++ {
							sum += a.At(i, l) * b.At(l, j)
						}
						b.Set(i, j, alpha*sum)
					}
				}
			} else {
				for i := m - 1; i >= 0; i-- {
					for j := 0; j < n; j++ {
						sum := diagAt(i) * b.At(i, j)
						for l := 0; l < i; l++ {
							sum += a.At(i, l) * b.At(l, j)
						}
						b.Set(i, j, alpha*sum)
					}
				}
			}
		} else {
			// op(A) flips the triangle: upper A acts like a lower
			// triangular factor, so the sweep direction flips too.
			if upper {
				for i := m - 1; i >= 0; i-- {
					for j := 0; j < n; j++ {
						sum := diagAt(i) * b.At(i, j)
						for l := 0; l < i; l++ {
							sum += cj(a.At(l, i)) * b.At(l, j)
						}
						b.Set(i, j, alpha*sum)
					}
				}
			} else {
				for i := 0; i < m; i++ {
					for j := 0; j < n; j++ {
						sum := diagAt(i) * b.At(i, j)
						for l := i + 1; l < m; l++ {
							sum += cj(a.At(l, i)) * b.At(l, j)
						}
						b.Set(i, j, alpha*sum)
					}
				}
			}
		}
		return
	}

	upper := uplo == blas.Upper
	if trans == blas.NoTrans {
		if upper {
			for j := n - 1; j >= 0; j-- {
				for i := 0; i < m; i++ {
					sum := b.At(i, j) * diagAt(j)
					for l := 0; l < j; l++ {
						sum += b.At(i, l) * a.At(l, j)
					}
					b.Set(i, j, alpha*sum)
				}
			}
		} else {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					sum := b.At(i, j) * diagAt(j)
					for l := j + 1; l < n; l++ {
						sum += b.At(i, l) * a.At(l, j)
					}
					b.Set(i, j, alpha*sum)
				}
			}
		}
	} else {
		if upper {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					sum := b.At(i, j) * diagAt(j)
					for l := j + 1; l < n; l++ {
						sum += b.At(i, l) * cj(a.At(j, l))
					}
					b.Set(i, j, alpha*sum)
				}
			}
		} else {
			for j := n - 1; j >= 0; j-- {
				for i := 0; i < m; i++ {
					sum := b.At(i, j) * diagAt(j)
					for l := 0; l < j; l++ {
						sum += b.At(i, l) * cj(a.At(j, l))
					}
					b.Set(i, j, alpha*sum)
				}
			}
		}
	}
}
