// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

func TestScalAxpy(t *testing.T) {
	rnd := rand.New(rand.NewPCG(21, 21))
	x := randomVector[complex128](rnd, 7)
	y := randomVector[complex128](rnd, 7)
	x0 := cloneVector(x)
	y0 := cloneVector(y)
	alpha := 2 - 3i

	Scal(alpha, x)
	for i := 0; i < 7; i++ {
		if d := scalar.Abs(x.At(i) - alpha*x0.At(i)); d > 1e-14 {
			t.Errorf("Scal: element %v off by %v", i, d)
		}
	}

	Axpy(alpha, x0, y)
	for i := 0; i < 7; i++ {
		if d := scalar.Abs(y.At(i) - (alpha*x0.At(i) + y0.At(i))); d > 1e-14 {
			t.Errorf("Axpy: element %v off by %v", i, d)
		}
	}
}

func TestDotcDotu(t *testing.T) {
	x := view.NewVector[complex128](2)
	y := view.NewVector[complex128](2)
	x.Set(0, 1+2i)
	x.Set(1, -1i)
	y.Set(0, 3)
	y.Set(1, 2+2i)

	// Dotc conjugates its first argument, Dotu does not.
	if got, want := Dotc(x, y), (1-2i)*3+(1i)*(2+2i); scalar.Abs(got-want) > 1e-15 {
		t.Errorf("Dotc: got %v, want %v", got, want)
	}
	if got, want := Dotu(x, y), (1+2i)*3+(-1i)*(2+2i); scalar.Abs(got-want) > 1e-15 {
		t.Errorf("Dotu: got %v, want %v", got, want)
	}
	if got := Dotc(x, x); math.Abs(imag(got)) != 0 || real(got) <= 0 {
		t.Errorf("Dotc(x,x)=%v is not real positive", got)
	}
}

func TestNrm2(t *testing.T) {
	x := view.NewVector[complex128](2)
	x.Set(0, 3+4i)
	x.Set(1, 12i)
	if got := Nrm2(x); math.Abs(got-13) > 1e-14 {
		t.Errorf("got %v, want 13", got)
	}

	// Values whose squares overflow must still produce a finite norm.
	big := view.NewVector[float64](2)
	big.Set(0, 3e300)
	big.Set(1, 4e300)
	if got := Nrm2(big); math.IsInf(got, 0) || math.Abs(got-5e300) > 1e287 {
		t.Errorf("got %v, want 5e300", got)
	}

	// And squares that underflow must not drop to zero.
	tiny := view.NewVector[float64](2)
	tiny.Set(0, 3e-300)
	tiny.Set(1, 4e-300)
	if got := Nrm2(tiny); math.Abs(got-5e-300) > 1e-313 {
		t.Errorf("got %v, want 5e-300", got)
	}
}

func TestRotUnitary(t *testing.T) {
	rnd := rand.New(rand.NewPCG(22, 22))
	const n = 9
	x := randomVector[complex128](rnd, n)
	y := randomVector[complex128](rnd, n)
	x0 := cloneVector(x)
	y0 := cloneVector(y)

	theta := 0.7
	c := math.Cos(theta)
	s := scalar.FromParts[complex128](math.Sin(theta)*0.6, math.Sin(theta)*0.8)

	Rot(x, y, c, s)

	// Column norms are preserved by the unitary rotation.
	for i := 0; i < n; i++ {
		before := math.Hypot(scalar.Abs(x0.At(i)), scalar.Abs(y0.At(i)))
		after := math.Hypot(scalar.Abs(x.At(i)), scalar.Abs(y.At(i)))
		if math.Abs(before-after) > 1e-13*math.Max(1, before) {
			t.Errorf("element %v: rotation changed the pair norm from %v to %v", i, before, after)
		}
	}

	// The adjoint rotation restores the originals.
	Rot(x, y, c, -s)
	for i := 0; i < n; i++ {
		if scalar.Abs(x.At(i)-x0.At(i)) > 1e-13 || scalar.Abs(y.At(i)-y0.At(i)) > 1e-13 {
			t.Errorf("element %v not restored by the adjoint rotation", i)
		}
	}
}

func TestRotAnnihilates(t *testing.T) {
	// The rotation built from a 3-4-5 pair zeroes the second component.
	x := view.NewVector[float64](1)
	y := view.NewVector[float64](1)
	x.Set(0, 3)
	y.Set(0, 4)
	Rot(x, y, 3.0/5.0, 4.0/5.0)
	if math.Abs(x.At(0)-5) > 1e-15 || math.Abs(y.At(0)) > 1e-15 {
		t.Errorf("got (%v,%v), want (5,0)", x.At(0), y.At(0))
	}
}
