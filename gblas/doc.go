// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gblas provides generic BLAS-style kernels over the views of
// package view, instantiable at float64 or complex128.
//
// The kernels mutate their output arguments in place and never retain a
// view beyond the call. Enumerated modes reuse the gonum blas constants.
package gblas
