// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

const (
	badDirect    = "glapack: bad direct"
	badSide      = "glapack: bad side"
	badStoreV    = "glapack: bad reflector storage; only rowwise storage is supported"
	badTrans     = "glapack: bad trans"
	badUplo      = "glapack: bad uplo"
	badNorm      = "glapack: bad norm"
	badShape     = "glapack: dimension mismatch"
	mGTN         = "glapack: m > n"
	shortTau     = "glapack: insufficient length of tau"
	shortWork    = "glapack: insufficient working storage"
	negBlockSize = "glapack: block size < 1"
)
