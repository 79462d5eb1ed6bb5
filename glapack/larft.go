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

// Larft forms the triangular factor T of the block reflector H, the
// product of k elementary reflectors stored rowwise in the k×nv matrix
// V with scalar factors tau:
//
//	H = H(0) * H(1) * ... * H(k-1)    if direct == lapack.Forward,
//	H = H(k-1) * ... * H(1) * H(0)    if direct == lapack.Backward,
//
// so that H = I - Vᴴ * T * V. For the forward direction reflector i has
// its unit element at column i and its free part after it, and T is
// upper triangular; for the backward direction reflector i has its unit
// element at column nv-k+i and its free part before it, and T is lower
// triangular.
//
// t must be a k×k matrix; only the triangle corresponding to direct is
// written. Only rowwise reflector storage is supported: the LQ/RQ family
// stores reflectors in matrix rows.
func Larft[T scalar.Scalar](direct lapack.Direct, storev lapack.StoreV, v view.Matrix[T], tau []T, t view.Matrix[T]) {
	if storev != lapack.RowWise {
		panic(badStoreV)
	}
	if direct != lapack.Forward && direct != lapack.Backward {
		panic(badDirect)
	}
	k, nv := v.Dims()
	if len(tau) < k {
		panic(shortTau)
	}
	tm, tn := t.Dims()
	if tm < k || tn < k {
		panic(badShape)
	}
	var zero T

	if direct == lapack.Forward {
		for i := 0; i < k; i++ {
			if tau[i] == zero {
				// H(i) is the identity; its column of T is zero.
				for j := 0; j <= i; j++ {
					t.Set(j, i, zero)
				}
				continue
			}
			// T[0:i, i] = -tau[i] * V[0:i, i:nv] * V[i, i:nv]ᴴ with the
			// unit element of reflector i taken as 1 regardless of what
			// the factored matrix stores there.
			vi := v.RowView(i).Slice(i+1, nv)
			for j := 0; j < i; j++ {
				vj := v.RowView(j).Slice(i+1, nv)
				t.Set(j, i, -tau[i]*(v.At(j, i)+gblas.Dotc(vi, vj)))
			}
			// T[0:i, i] = T[0:i, 0:i] * T[0:i, i].
			if i > 0 {
				col := t.Slice(0, i, i, i+1)
				gblas.Trmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit, scalar.FromReal[T](1), t.Slice(0, i, 0, i), col)
			}
			t.Set(i, i, tau[i])
		}
		return
	}

	for i := k - 1; i >= 0; i-- {
		if tau[i] == zero {
			for j := i; j < k; j++ {
				t.Set(j, i, zero)
			}
			continue
		}
		// Unit element of reflector i sits at column nv-k+i; the free
		// part precedes it.
		vi := v.RowView(i).Slice(0, nv-k+i)
		for j := i + 1; j < k; j++ {
			vj := v.RowView(j).Slice(0, nv-k+i)
			t.Set(j, i, -tau[i]*(v.At(j, nv-k+i)+gblas.Dotc(vi, vj)))
		}
		// T[i+1:k, i] = T[i+1:k, i+1:k] * T[i+1:k, i].
		if i < k-1 {
			col := t.Slice(i+1, k, i, i+1)
			gblas.Trmm(blas.Left, blas.Lower, blas.NoTrans, blas.NonUnit, scalar.FromReal[T](1), t.Slice(i+1, k, i+1, k), col)
		}
		t.Set(i, i, tau[i])
	}
}
