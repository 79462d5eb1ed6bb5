// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Larfb applies the block reflector H, or its conjugate transpose, to
// the m×n matrix C:
//
//	C := op(H) * C   if side == blas.Left,
//	C := C * op(H)   if side == blas.Right,
//
// where H = I - Vᴴ * T * V is the product of elementary reflectors
// stored rowwise in V with compact triangular factor T as produced by
// Larft with the same direct and storev. op(H) is H for blas.NoTrans
// and Hᴴ for blas.ConjTrans; blas.Trans is accepted as a synonym over
// the reals only.
//
// V is k×n for the right side and k×m for the left side; T is k×k,
// upper triangular for lapack.Forward and lower triangular for
// lapack.Backward. Only rowwise reflector storage is supported.
//
// work is scratch with at least m×k extent for the right side and n×k
// for the left side; a smaller work causes an internal allocation.
func Larfb[T scalar.Scalar](side blas.Side, trans blas.Transpose, direct lapack.Direct, storev lapack.StoreV, v, t, c, work view.Matrix[T]) {
	switch {
	case side != blas.Left && side != blas.Right:
		panic(badSide)
	case trans != blas.NoTrans && trans != blas.Trans && trans != blas.ConjTrans:
		panic(badTrans)
	case trans == blas.Trans && scalar.IsComplex[T]():
		panic(badTrans)
	case direct != lapack.Forward && direct != lapack.Backward:
		panic(badDirect)
	case storev != lapack.RowWise:
		panic(badStoreV)
	}
	if trans == blas.Trans {
		trans = blas.ConjTrans
	}
	k, nv := v.Dims()
	m, n := c.Dims()
	tm, tn := t.Dims()
	switch {
	case side == blas.Right && nv != n, side == blas.Left && nv != m:
		panic(badShape)
	case tm < k || tn < k:
		panic(badShape)
	}
	if m == 0 || n == 0 || k == 0 {
		return
	}

	one := scalar.FromReal[T](1)
	minusOne := scalar.FromReal[T](-1)

	if side == blas.Right {
		w := sliceOrAlloc(work, m, k)
		if direct == lapack.Forward {
			// V = [V1 V2] with V1 the unit upper triangular head.
			v1 := v.Slice(0, k, 0, k)
			v2 := v.Slice(0, k, k, nv)
			c1 := c.Slice(0, m, 0, k)
			c2 := c.Slice(0, m, k, n)

			// W := C * Vᴴ = C1*V1ᴴ + C2*V2ᴴ.
			Lacpy(blas.All, c1, w)
			gblas.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, one, v1, w)
			if n > k {
				gblas.Gemm(blas.NoTrans, blas.ConjTrans, one, c2, v2, one, w)
			}
			// W := W * op(T).
			gblas.Trmm(blas.Right, blas.Upper, trans, blas.NonUnit, one, t.Slice(0, k, 0, k), w)
			// C := C - W * V.
			if n > k {
				gblas.Gemm(blas.NoTrans, blas.NoTrans, minusOne, w, v2, one, c2)
			}
			gblas.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, one, v1, w)
			subMatrix(w, c1)
			return
		}
		// Backward: V = [V1 V2] with V2 the unit lower triangular tail.
		v1 := v.Slice(0, k, 0, nv-k)
		v2 := v.Slice(0, k, nv-k, nv)
		c1 := c.Slice(0, m, 0, n-k)
		c2 := c.Slice(0, m, n-k, n)

		Lacpy(blas.All, c2, w)
		gblas.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, one, v2, w)
		if n > k {
			gblas.Gemm(blas.NoTrans, blas.ConjTrans, one, c1, v1, one, w)
		}
		gblas.Trmm(blas.Right, blas.Lower, trans, blas.NonUnit, one, t.Slice(0, k, 0, k), w)
		if n > k {
			gblas.Gemm(blas.NoTrans, blas.NoTrans, minusOne, w, v1, one, c1)
		}
		gblas.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, one, v2, w)
		subMatrix(w, c2)
		return
	}

	// Left side. W holds (V*C)ᴴ, so T enters transposed relative to the
	// right-side case.
	transT := blas.ConjTrans
	if trans == blas.ConjTrans {
		transT = blas.NoTrans
	}
	w := sliceOrAlloc(work, n, k)
	if direct == lapack.Forward {
		v1 := v.Slice(0, k, 0, k)
		v2 := v.Slice(0, k, k, nv)
		c1 := c.Slice(0, k, 0, n)
		c2 := c.Slice(k, m, 0, n)

		// W := (V * C)ᴴ = C1ᴴ*V1ᴴ + C2ᴴ*V2ᴴ.
		conjTransCopy(c1, w)
		gblas.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, one, v1, w)
		if m > k {
			gblas.Gemm(blas.ConjTrans, blas.ConjTrans, one, c2, v2, one, w)
		}
		gblas.Trmm(blas.Right, blas.Upper, transT, blas.NonUnit, one, t.Slice(0, k, 0, k), w)
		// C := C - Vᴴ * Wᴴ.
		if m > k {
			gblas.Gemm(blas.ConjTrans, blas.ConjTrans, minusOne, v2, w, one, c2)
		}
		gblas.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, one, v1, w)
		subConjTrans(w, c1)
		return
	}
	v1 := v.Slice(0, k, 0, nv-k)
	v2 := v.Slice(0, k, nv-k, nv)
	c1 := c.Slice(0, m-k, 0, n)
	c2 := c.Slice(m-k, m, 0, n)

	conjTransCopy(c2, w)
	gblas.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, one, v2, w)
	if m > k {
		gblas.Gemm(blas.ConjTrans, blas.ConjTrans, one, c1, v1, one, w)
	}
	gblas.Trmm(blas.Right, blas.Lower, transT, blas.NonUnit, one, t.Slice(0, k, 0, k), w)
	if m > k {
		gblas.Gemm(blas.ConjTrans, blas.ConjTrans, minusOne, v1, w, one, c1)
	}
	gblas.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, one, v2, w)
	subConjTrans(w, c2)
}

// sliceOrAlloc returns the leading r×c corner of work, allocating fresh
// scratch when work is too small.
func sliceOrAlloc[T scalar.Scalar](work view.Matrix[T], r, c int) view.Matrix[T] {
	wr, wc := work.Dims()
	if wr < r || wc < c {
		return view.NewMatrix[T](r, c)
	}
	return work.Slice(0, r, 0, c)
}

// subMatrix computes c -= w elementwise.
func subMatrix[T scalar.Scalar](w, c view.Matrix[T]) {
	m, n := c.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, c.At(i, j)-w.At(i, j))
		}
	}
}

// conjTransCopy sets w := cᴴ.
func conjTransCopy[T scalar.Scalar](c, w view.Matrix[T]) {
	m, n := c.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			w.Set(j, i, scalar.Conj(c.At(i, j)))
		}
	}
}

// subConjTrans computes c -= wᴴ elementwise.
func subConjTrans[T scalar.Scalar](w, c view.Matrix[T]) {
	m, n := c.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, c.At(i, j)-scalar.Conj(w.At(j, i)))
		}
	}
}
