// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glapack provides generic LAPACK-style factorization kernels
// over the views of package view, instantiable at float64 or complex128.
//
// The package implements the blocked LQ and RQ Householder
// factorizations (Gelqf, Gerqf) with their unblocked base cases (Gelq2,
// Gerq2), generation of explicit orthonormal bases from their compact
// output (Ungl2, Ungr2), and the elementary reflector toolkit they are
// built from (Larfg, Larf, Larft, Larfb).
//
// Every routine that needs scratch storage first answers how much it
// needs as a pure function of its argument shapes (GelqfWorkInfo,
// GerqfWorkInfo); callers may pre-allocate scratch once and reuse it
// across calls via the options structs. Calls with no supplied scratch
// allocate internally and release on return.
//
// Precondition violations panic before any output is mutated.
// Zero-sized inputs and zero reflectors are valid and handled by quick
// returns, not errors.
package glapack
