// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

// completeMatch extends a partial row-to-column matching into a full
// column permutation by pairing each remaining unmatched row with a
// remaining unmatched column, flagging the pairing as structurally zero
// via Flip. match must have length n and already hold the result of
// Maxtrans.
//
// Bad (unmatched) columns are enumerated in descending order and paired
// with unmatched rows in ascending order; this is the order the SuiteSparse
// BTF reference implementation uses, kept here for determinism, but
// nothing in the output contract depends on it — callers should check the
// documented invariants (Unflip(match[*]) is a permutation of [0,n)), not
// this specific pairing.
func completeMatch(n int, match []int) {
	flagged := make([]bool, n)
	for i := 0; i < n; i++ {
		if match[i] >= 0 {
			flagged[match[i]] = true
		}
	}

	bad := make([]int, 0, n)
	for j := n - 1; j >= 0; j-- {
		if !flagged[j] {
			bad = append(bad, j)
		}
	}

	k := 0
	for i := 0; i < n; i++ {
		if match[i] == Empty {
			match[i] = Flip(bad[k])
			k++
		}
	}
}
