// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

// Empty is the sentinel stored in Match or Q for "no row/column assigned".
// It is a fixed point of Flip.
const Empty = -1

// Flip encodes j as a structurally-zero (fill-only) match: it packs a
// "this entry is not a real nonzero" flag into a column index without a
// parallel boolean array. Flip is its own inverse, and Empty is a fixed
// point: Flip(Empty) == Empty.
//
//	Flip(0) == -2
//	Flip(1) == -3
//	Flip(Flip(j)) == j for every j
func Flip(j int) int {
	return -j - 2
}

// IsFlipped reports whether j is a flipped (structurally zero) column
// index, as opposed to Empty or a real (unflipped) column index.
func IsFlipped(j int) bool {
	return j < -1
}

// Unflip returns the real column index encoded by j, whether or not j is
// flipped. The result is always in [-1, n) for j in the range a valid
// Match or Q array can hold.
func Unflip(j int) int {
	if IsFlipped(j) {
		return Flip(j)
	}
	return j
}
