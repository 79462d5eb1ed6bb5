// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

func TestLarfgFloat64(t *testing.T) { testLarfg[float64](t) }

func TestLarfgComplex128(t *testing.T) { testLarfg[complex128](t) }

func testLarfg[T scalar.Scalar](t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	const tol = 1e-13
	for _, n := range []int{1, 2, 3, 5, 10, 50} {
		for cas := 0; cas < 10; cas++ {
			alpha := randomScalar[T](rnd)
			x := view.NewVector[T](n - 1)
			for i := 0; i < n-1; i++ {
				x.Set(i, randomScalar[T](rnd))
			}

			// Original vector a = [alpha; x].
			a := view.NewVector[T](n)
			a.Set(0, alpha)
			for i := 0; i < n-1; i++ {
				a.Set(i+1, x.At(i))
			}
			anorm := gblas.Nrm2(a)

			beta, tau := Larfg(alpha, x)

			if scalar.Imag(beta) != 0 {
				t.Errorf("n=%v: beta has nonzero imaginary part %v", n, scalar.Imag(beta))
			}
			if math.Abs(math.Abs(scalar.Real(beta))-anorm) > tol*math.Max(1, anorm) {
				t.Errorf("n=%v: |beta|=%v does not match ‖a‖=%v", n, math.Abs(scalar.Real(beta)), anorm)
			}

			// v = [1; x] after the call; H*a must equal beta*e_0.
			v := view.NewVector[T](n)
			v.Set(0, scalar.FromReal[T](1))
			for i := 0; i < n-1; i++ {
				v.Set(i+1, x.At(i))
			}
			vha := gblas.Dotc(v, a)
			ha := view.NewVector[T](n)
			for i := 0; i < n; i++ {
				ha.Set(i, a.At(i)-tau*vha*v.At(i))
			}
			if scalar.Abs(ha.At(0)-beta) > tol*math.Max(1, anorm) {
				t.Errorf("n=%v: (H a)[0]=%v, want beta=%v", n, ha.At(0), beta)
			}
			for i := 1; i < n; i++ {
				if scalar.Abs(ha.At(i)) > tol*math.Max(1, anorm) {
					t.Errorf("n=%v: (H a)[%v]=%v not annihilated", n, i, ha.At(i))
				}
			}
		}
	}
}

func TestLarfgZeroTail(t *testing.T) {
	// Real alpha with a zero tail needs no reflection.
	x := view.NewVector[float64](3)
	beta, tau := Larfg(2.5, x)
	if tau != 0 {
		t.Errorf("tau=%v, want 0 for trivial reflector", tau)
	}
	if beta != 2.5 {
		t.Errorf("beta=%v, want alpha unchanged", beta)
	}

	// A complex alpha with nonzero imaginary part must still be
	// rotated onto the real axis.
	xc := view.NewVector[complex128](3)
	betac, tauc := Larfg(3+4i, xc)
	if imag(betac) != 0 {
		t.Errorf("beta=%v not real", betac)
	}
	if math.Abs(math.Abs(real(betac))-5) > 1e-14 {
		t.Errorf("|beta|=%v, want 5", math.Abs(real(betac)))
	}
	if tauc == 0 {
		t.Error("tau=0 but alpha had an imaginary part to rotate away")
	}
}

func TestLarfgTinyNorm(t *testing.T) {
	// Values near the underflow threshold exercise the rescaling loop.
	const tiny = 0x1p-1055
	x := view.NewVector[float64](2)
	x.Set(0, 3*tiny)
	x.Set(1, 4*tiny)
	beta, tau := Larfg(0, x)
	want := 5 * tiny
	if math.Abs(math.Abs(beta)-want) > 1e-13*want {
		t.Errorf("|beta|=%v, want %v", math.Abs(beta), want)
	}
	if tau < 0 || tau > 2 {
		t.Errorf("tau=%v outside [0,2]", tau)
	}
}
