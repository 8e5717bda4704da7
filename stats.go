// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

// BlockSizes returns the size of each block described by r, a block
// boundary array as returned by Order or Strongcomp (r[b]..r[b+1]-1 is
// the extent of block b). It is a convenience for reporting and has no
// effect on the ordering itself.
func BlockSizes(r []int) []int {
	if len(r) == 0 {
		return nil
	}
	sizes := make([]int, len(r)-1)
	for b := range sizes {
		sizes[b] = r[b+1] - r[b]
	}
	return sizes
}
