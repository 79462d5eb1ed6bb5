// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// hermitianize zeroes the imaginary parts of the diagonal of c so that
// it is a valid Hermitian input.
func hermitianize[T scalar.Scalar](c view.Matrix[T]) {
	n, _ := c.Dims()
	for i := 0; i < n; i++ {
		c.Set(i, i, scalar.FromReal[T](scalar.Real(c.At(i, i))))
	}
}

// herkRef computes the full n×n update via Gemm for reference.
func herkRef[T scalar.Scalar](trans blas.Transpose, alpha float64, a view.Matrix[T], beta float64, c0 view.Matrix[T]) view.Matrix[T] {
	n, _ := c0.Dims()
	g := view.NewMatrix[T](n, n)
	if trans == blas.NoTrans {
		Gemm(blas.NoTrans, blas.ConjTrans, scalar.FromReal[T](alpha), a, a, scalar.FromReal[T](0), g)
	} else {
		Gemm(blas.ConjTrans, blas.NoTrans, scalar.FromReal[T](alpha), a, a, scalar.FromReal[T](0), g)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, g.At(i, j)+scalar.FromReal[T](beta)*c0.At(i, j))
		}
	}
	return g
}

func TestHerkFloat64(t *testing.T) { testHerk[float64](t) }

func TestHerkComplex128(t *testing.T) { testHerk[complex128](t) }

func testHerk[T scalar.Scalar](t *testing.T) {
	rnd := rand.New(rand.NewPCG(29, 29))
	const n, k = 5, 3
	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower, blas.All} {
		for _, trans := range []blas.Transpose{blas.NoTrans, blas.ConjTrans} {
			for _, coef := range []struct{ alpha, beta float64 }{
				{1.5, -0.5}, {1, 0}, {0, 0}, {0, 1}, {0, 2.5}, {2, 1},
			} {
				name := fmt.Sprintf("uplo=%c,trans=%c,alpha=%v,beta=%v", uplo, trans, coef.alpha, coef.beta)

				var a view.Matrix[T]
				if trans == blas.NoTrans {
					a = randomGeneral[T](rnd, n, k)
				} else {
					a = randomGeneral[T](rnd, k, n)
				}
				c0 := randomGeneral[T](rnd, n, n)
				hermitianize(c0)

				c := cloneGeneral(c0)
				Herk(uplo, trans, coef.alpha, a, coef.beta, c)

				want := herkRef(trans, coef.alpha, a, coef.beta, c0)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						inTri := uplo == blas.All ||
							(uplo == blas.Upper && j >= i) ||
							(uplo == blas.Lower && j <= i)
						if !inTri {
							// The opposite triangle must be untouched.
							if c.At(i, j) != c0.At(i, j) {
								t.Errorf("%v: C[%v,%v] outside the triangle modified", name, i, j)
							}
							continue
						}
						if d := scalar.Abs(c.At(i, j) - want.At(i, j)); d > 1e-13 {
							t.Errorf("%v: C[%v,%v] off by %v", name, i, j, d)
						}
					}
				}

				// Diagonal realness is exact, not approximate, except on
				// the untouched alpha=0, beta=1 path.
				if coef.alpha != 0 || coef.beta != 1 {
					for i := 0; i < n; i++ {
						if scalar.Imag(c.At(i, i)) != 0 {
							t.Errorf("%v: C[%v,%v] has imaginary part %v", name, i, i, scalar.Imag(c.At(i, i)))
						}
					}
				}
			}
		}
	}
}

func TestHerkAllMirror(t *testing.T) {
	rnd := rand.New(rand.NewPCG(30, 30))
	const n, k = 6, 4
	a := randomGeneral[complex128](rnd, n, k)
	c := randomGeneral[complex128](rnd, n, n)
	hermitianize(c)

	Herk(blas.All, blas.NoTrans, 1.0, a, 0.5, c)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if c.At(i, j) != scalar.Conj(c.At(j, i)) {
				t.Errorf("C[%v,%v]=%v is not the exact conjugate of C[%v,%v]=%v", i, j, c.At(i, j), j, i, c.At(j, i))
			}
		}
	}
}

func TestHerkAlphaZeroDoesNotReadA(t *testing.T) {
	const n, k = 4, 3
	a := view.NewMatrix[complex128](n, k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			a.Set(i, j, complex(math.NaN(), math.NaN()))
		}
	}
	rnd := rand.New(rand.NewPCG(31, 31))
	c := randomGeneral[complex128](rnd, n, n)
	hermitianize(c)
	c0 := cloneGeneral(c)

	Herk(blas.Upper, blas.NoTrans, 0, a, 2, c)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if math.IsNaN(real(c.At(i, j))) {
				t.Fatalf("NaN from A leaked into C[%v,%v]", i, j)
			}
			if d := scalar.Abs(c.At(i, j) - 2*c0.At(i, j)); d > 1e-14 {
				t.Errorf("C[%v,%v] off by %v", i, j, d)
			}
		}
	}
}

func TestHerkZeroSized(t *testing.T) {
	a := view.NewMatrix[complex128](0, 3)
	c := view.NewMatrix[complex128](0, 0)
	Herk(blas.Upper, blas.NoTrans, 1, a, 1, c) // must not panic
}

func TestHerkComplexTransPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for blas.Trans with complex elements")
		}
	}()
	a := view.NewMatrix[complex128](2, 2)
	c := view.NewMatrix[complex128](2, 2)
	Herk(blas.Upper, blas.Trans, 1, a, 1, c)
}
