// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides non-owning strided views over dense matrices and
// vectors.
//
// A view borrows caller-owned storage for the duration of a call; it
// never copies elements. Derived views (Slice, RowView, ColView, Diag,
// T) alias the same storage in O(1), so writes through one view are
// visible through any overlapping view. The kernels in this module rely
// on that aliasing: trailing-update steps operate in place on slices of
// the matrix being factorized.
//
// A Matrix keeps independent row and column strides. Row-major,
// column-major and transposed regions are therefore all the same type,
// and every derived region — including any diagonal — is uniformly
// strided.
//
// Element access and slicing are not bounds checked beyond what the
// runtime enforces on the backing slice; range validity is the caller's
// responsibility. The flat-array entry points in package flat validate
// shapes before any view is built.
package view

// Matrix is a rectangular view over borrowed storage. The element (i, j)
// lives at data[off + i*rs + j*cs]. The zero value is an empty 0×0
// matrix.
type Matrix[T any] struct {
	data []T
	off  int
	rows int
	cols int
	rs   int
	cs   int
}

// NewMatrix returns an r×c matrix backed by freshly allocated row-major
// storage.
func NewMatrix[T any](r, c int) Matrix[T] {
	if r < 0 || c < 0 {
		panic(badDims)
	}
	return Matrix[T]{data: make([]T, r*c), rows: r, cols: c, rs: c, cs: 1}
}

// MatrixFrom returns an r×c row-major view over data with leading
// dimension stride ≥ c.
func MatrixFrom[T any](data []T, r, c, stride int) Matrix[T] {
	if r < 0 || c < 0 {
		panic(badDims)
	}
	if stride < c || (r > 0 && c > 0 && len(data) < (r-1)*stride+c) {
		panic(badStride)
	}
	return Matrix[T]{data: data, rows: r, cols: c, rs: stride, cs: 1}
}

// ColMajorFrom returns an r×c column-major view over data with leading
// dimension stride ≥ r.
func ColMajorFrom[T any](data []T, r, c, stride int) Matrix[T] {
	if r < 0 || c < 0 {
		panic(badDims)
	}
	if stride < r || (r > 0 && c > 0 && len(data) < (c-1)*stride+r) {
		panic(badStride)
	}
	return Matrix[T]{data: data, rows: r, cols: c, rs: 1, cs: stride}
}

// Dims returns the row and column counts.
func (m Matrix[T]) Dims() (r, c int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the element at (i, j).
func (m Matrix[T]) At(i, j int) T {
	return m.data[m.off+i*m.rs+j*m.cs]
}

// Set stores v at (i, j).
func (m Matrix[T]) Set(i, j int, v T) {
	m.data[m.off+i*m.rs+j*m.cs] = v
}

// Slice returns the submatrix over rows [i0, i1) and columns [j0, j1),
// aliasing the receiver's storage.
func (m Matrix[T]) Slice(i0, i1, j0, j1 int) Matrix[T] {
	return Matrix[T]{
		data: m.data,
		off:  m.off + i0*m.rs + j0*m.cs,
		rows: i1 - i0,
		cols: j1 - j0,
		rs:   m.rs,
		cs:   m.cs,
	}
}

// RowView returns row i as a vector aliasing the receiver's storage.
func (m Matrix[T]) RowView(i int) Vector[T] {
	return Vector[T]{data: m.data, off: m.off + i*m.rs, n: m.cols, inc: m.cs}
}

// ColView returns column j as a vector aliasing the receiver's storage.
func (m Matrix[T]) ColView(j int) Vector[T] {
	return Vector[T]{data: m.data, off: m.off + j*m.cs, n: m.rows, inc: m.rs}
}

// Diag returns the k-th diagonal — the elements (i, i+k), with k < 0
// selecting a sub-diagonal — as a vector aliasing the receiver's
// storage.
func (m Matrix[T]) Diag(k int) Vector[T] {
	off := m.off
	rows, cols := m.rows, m.cols
	if k >= 0 {
		off += k * m.cs
		cols -= k
	} else {
		off -= k * m.rs
		rows += k
	}
	return Vector[T]{data: m.data, off: off, n: min(rows, cols), inc: m.rs + m.cs}
}

// T returns the transposed view: element (i, j) of the result maps to
// element (j, i) of the receiver. No data moves.
func (m Matrix[T]) T() Matrix[T] {
	return Matrix[T]{data: m.data, off: m.off, rows: m.cols, cols: m.rows, rs: m.cs, cs: m.rs}
}

// Vector is a 1-D view over borrowed storage. Element i lives at
// data[off + i*inc]; inc may be negative, meaning reverse traversal.
type Vector[T any] struct {
	data []T
	off  int
	n    int
	inc  int
}

// NewVector returns a length-n vector backed by freshly allocated
// storage.
func NewVector[T any](n int) Vector[T] {
	if n < 0 {
		panic(badDims)
	}
	return Vector[T]{data: make([]T, n), n: n, inc: 1}
}

// VectorFrom returns a length-n view over data with increment inc. A
// negative increment traverses data backwards starting from element
// (n-1)*(-inc), the BLAS convention.
func VectorFrom[T any](data []T, n, inc int) Vector[T] {
	if n < 0 {
		panic(badDims)
	}
	if inc == 0 {
		panic(badStride)
	}
	off := 0
	if inc < 0 {
		off = (n - 1) * -inc
	}
	return Vector[T]{data: data, off: off, n: n, inc: inc}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.n }

// At returns element i.
func (v Vector[T]) At(i int) T {
	return v.data[v.off+i*v.inc]
}

// Set stores x at element i.
func (v Vector[T]) Set(i int, x T) {
	v.data[v.off+i*v.inc] = x
}

// Slice returns the subvector over [lo, hi), aliasing the receiver's
// storage.
func (v Vector[T]) Slice(lo, hi int) Vector[T] {
	return Vector[T]{data: v.data, off: v.off + lo*v.inc, n: hi - lo, inc: v.inc}
}

const (
	badDims   = "view: negative dimension"
	badStride = "view: bad stride"
)
