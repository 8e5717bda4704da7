// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

// Order computes a block triangular form ordering of the n-by-n matrix A
// held in Ap, Ai (compressed-column form). It finds a maximum (or
// work-capped) bipartite matching between rows and columns, completes any
// deficient matching by pairing the remaining unmatched rows and columns
// (flagging those pairs as structurally zero), and runs a strongly
// connected component decomposition on the matched, permuted graph.
//
// p, q must have length n and r length n+1; Order writes its result into
// them and does not retain any reference to them after it returns.
// unflip(q[k]) is a permutation of [0,n); q[k] < -1 marks position k as a
// structurally zero diagonal entry in P·A·Q. p is a permutation of
// [0,n); row P[k] of A is row k of P·A·Q. Block b occupies positions
// r[b]..r[b+1]-1 of both p and the unflipped q.
//
// If maxWork is positive, the matching step aborts once it has spent more
// than maxWork*nnz(A) units of work on augmenting-path search; work then
// reports -1 and the remainder of Order still completes, producing a
// valid ordering that is not guaranteed to reach the maximum possible
// nmatch.
func (impl Implementation) Order(n int, ap, ai []int, maxWork float64, p, q, r []int) (work float64, nmatch, nblocks int) {
	checkCSC(n, ap, ai)
	if len(q) != n {
		panic(ErrQLength)
	}

	// Maxtrans writes the row-to-column match directly into q: q[i]
	// is exactly the Q the strongly-connected-component search needs,
	// node i standing for both row i and the diagonal position it
	// will occupy once matched to column q[i].
	nmatch, work = impl.Maxtrans(n, ap, ai, q, maxWork)
	if nmatch < n {
		completeMatch(n, q)
	}

	nblocks = impl.Strongcomp(n, ap, ai, q, p, r)
	return work, nmatch, nblocks
}
