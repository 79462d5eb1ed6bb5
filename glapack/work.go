// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

// WorkInfo describes the scratch extent an algorithm needs, as a pure
// function of its argument shapes. Scratch is carved from a flat slice,
// so only the total Size matters to the engines; Rows and Cols report
// the natural 2-D shape of the most demanding intermediate.
type WorkInfo struct {
	Rows, Cols int
}

// Size returns the number of scalars of scratch required.
func (w WorkInfo) Size() int { return w.Rows * w.Cols }

// defaultBlockSize is the panel width used by the blocked factorizations
// when the caller does not configure one.
const defaultBlockSize = 32

// LQOpts configures the blocked factorization drivers and the
// materialization routines. The zero value (or a nil *LQOpts) selects
// the defaults: block size 32 and internally allocated workspace.
type LQOpts[T any] struct {
	// BlockSize is the panel width/height per blocked step. It is
	// clamped internally to min(m, n).
	BlockSize int
	// Work is optional scratch storage. It is used whenever it is large
	// enough for the shape-derived requirement; otherwise the call
	// allocates its own scratch for its duration.
	Work []T
}

func (o *LQOpts[T]) blockSize() int {
	if o == nil || o.BlockSize == 0 {
		return defaultBlockSize
	}
	if o.BlockSize < 0 {
		panic(negBlockSize)
	}
	return o.BlockSize
}

func (o *LQOpts[T]) work(wi WorkInfo) []T {
	if o != nil && len(o.Work) >= wi.Size() {
		return o.Work[:wi.Size()]
	}
	return make([]T, wi.Size())
}

// GelqfWorkInfo returns the scratch requirement of Gelqf for an m×n
// matrix factorized with block size nb. It depends only on the shapes.
func GelqfWorkInfo(m, n, nb int) WorkInfo {
	return lqWorkInfo(m, n, nb)
}

// GerqfWorkInfo returns the scratch requirement of Gerqf for an m×n
// matrix factorized with block size nb. It depends only on the shapes.
func GerqfWorkInfo(m, n, nb int) WorkInfo {
	return lqWorkInfo(m, n, nb)
}

// lqWorkInfo is the shared sizing rule of the LQ/RQ drivers: when some
// panel has a trailing region (m > nb after clamping), room for the
// widest blocked update, (m-nb)×nb, plus the nb×nb compact triangular
// factor; otherwise only the unblocked panel scratch. The per-panel
// requirements shrink monotonically, so the first panel dominates.
func lqWorkInfo(m, n, nb int) WorkInfo {
	if nb < 1 {
		panic(negBlockSize)
	}
	k := min(m, n)
	if k == 0 {
		return WorkInfo{}
	}
	nb = min(nb, k)
	if m > nb {
		return WorkInfo{Rows: m, Cols: nb}
	}
	return WorkInfo{Rows: 1, Cols: m - 1}
}
