// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

const (
	badSide      = "gblas: illegal side"
	badUplo      = "gblas: illegal triangle"
	badTranspose = "gblas: illegal transpose"
	badDiag      = "gblas: illegal diagonal"
	badLength    = "gblas: vector length mismatch"
	badShape     = "gblas: dimension mismatch"
	cNotSquare   = "gblas: c is not square"
	aNotSquare   = "gblas: a is not square"
)
