// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"math"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

const (
	// Machine epsilon and smallest normal for float64, the constants
	// LAPACK calls dlamch('E') and dlamch('S').
	dlamchE = 0x1p-53
	dlamchS = 0x1p-1022
)

// Larfg generates an elementary reflector H of order x.Len()+1,
//
//	H = I - tau * v * vᴴ,
//
// unitary and such that
//
//	Hᴴ * [alpha]   [beta]
//	     [  x  ] = [ 0  ],
//
// with beta real. On return x is overwritten with the trailing elements
// of v, whose leading element is 1 and is not stored. If x is zero and
// alpha has zero imaginary part, tau is zero and H is the identity.
//
// Over the reals tau lies in [1, 2] for any nonzero reflector.
func Larfg[T scalar.Scalar](alpha T, x view.Vector[T]) (beta, tau T) {
	xnorm := gblas.Nrm2(x)
	ai := scalar.Imag(alpha)
	if xnorm == 0 && ai == 0 {
		return alpha, 0
	}

	ar := scalar.Real(alpha)
	b := -math.Copysign(lapy3(ar, ai, xnorm), ar)
	safmin := dlamchS / dlamchE
	var knt int
	if math.Abs(b) < safmin {
		// xnorm and beta may be inaccurate; rescale into safe range.
		rsafmn := 1 / safmin
		for {
			knt++
			gblas.Scal(scalar.FromReal[T](rsafmn), x)
			b *= rsafmn
			ai *= rsafmn
			ar *= rsafmn
			if math.Abs(b) >= safmin || knt >= 20 {
				break
			}
		}
		xnorm = gblas.Nrm2(x)
		alpha = scalar.FromParts[T](ar, ai)
		b = -math.Copysign(lapy3(ar, ai, xnorm), ar)
	}
	tau = scalar.FromParts[T]((b-ar)/b, -ai/b)
	gblas.Scal(scalar.FromReal[T](1)/(alpha-scalar.FromReal[T](b)), x)
	for j := 0; j < knt; j++ {
		b *= safmin
	}
	return scalar.FromReal[T](b), tau
}

// lapy3 returns sqrt(x² + y² + z²) without undue overflow or underflow.
func lapy3(x, y, z float64) float64 {
	w := math.Max(math.Abs(x), math.Max(math.Abs(y), math.Abs(z)))
	if w == 0 {
		return 0
	}
	x /= w
	y /= w
	z /= w
	return w * math.Sqrt(x*x+y*y+z*z)
}
