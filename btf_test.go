// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// checkOrderInvariants verifies the universal properties of §8 of the
// specification against a completed Order call.
func checkOrderInvariants(t *testing.T, n int, ap, ai, p, q, r []int, nblocks, nmatch int) {
	t.Helper()

	checkPermutation(t, n, p)
	checkUnflipPermutation(t, n, q)

	if r[0] != 0 {
		t.Errorf("r[0] = %d, want 0", r[0])
	}
	if r[nblocks] != n {
		t.Errorf("r[nblocks] = %d, want %d", r[nblocks], n)
	}
	for b := 0; b < nblocks; b++ {
		if r[b] >= r[b+1] {
			t.Errorf("r not strictly increasing at block %d: r[%d]=%d, r[%d]=%d", b, b, r[b], b+1, r[b+1])
		}
	}

	gotNmatch := 0
	for _, qk := range q {
		if qk >= 0 {
			gotNmatch++
		}
	}
	if gotNmatch != nmatch {
		t.Errorf("count of q[k]>=0 = %d, nmatch reported %d", gotNmatch, nmatch)
	}

	// blockOf maps an original row to its block; colBlockOf maps an
	// original column, found through the unflipped q, to the block of the
	// position it was permuted to.
	blockOf := make([]int, n)
	colBlockOf := make([]int, n)
	for b := 0; b < nblocks; b++ {
		for k := r[b]; k < r[b+1]; k++ {
			blockOf[p[k]] = b
			colBlockOf[Unflip(q[k])] = b
		}
	}
	for j := 0; j < n; j++ {
		for pp := ap[j]; pp < ap[j+1]; pp++ {
			i := ai[pp]
			if blockOf[i] > colBlockOf[j] {
				t.Errorf("edge (row %d, col %d) violates block(row) <= block(col): %d > %d", i, j, blockOf[i], colBlockOf[j])
			}
		}
	}
}

func TestOrderScenarios(t *testing.T) {
	for _, test := range []struct {
		name        string
		n           int
		ap, ai      []int
		wantNmatch  int
		wantNblocks int
		wantR       []int
		anyFlipped  bool
	}{
		{
			name: "A identity", n: 1,
			ap: []int{0, 1}, ai: []int{0},
			wantNmatch: 1, wantNblocks: 1, wantR: []int{0, 1},
		},
		{
			name: "B 2x2 diagonal", n: 2,
			ap: []int{0, 1, 2}, ai: []int{0, 1},
			wantNmatch: 2, wantNblocks: 2, wantR: []int{0, 1, 2},
		},
		{
			// Every entry of a 2x2 matrix is nonzero: whichever pair the
			// matching lands on (the cheap pass takes the diagonal
			// here), the two off-diagonal entries still connect the two
			// nodes both ways, so they stay in one block.
			name: "C 2x2 fully dense, irreducible", n: 2,
			ap: []int{0, 2, 4}, ai: []int{0, 1, 0, 1},
			wantNmatch: 2, wantNblocks: 1, wantR: []int{0, 2},
		},
		{
			name: "D structurally singular 2x2", n: 2,
			ap: []int{0, 1, 1}, ai: []int{0},
			wantNmatch: 1, wantNblocks: 2, wantR: []int{0, 1, 2}, anyFlipped: true,
		},
		{
			name: "E upper triangular with lower-right cycle", n: 3,
			ap: []int{0, 1, 3, 5}, ai: []int{0, 1, 2, 1, 2},
			wantNmatch: 3, wantNblocks: 2, wantR: []int{0, 1, 3},
		},
		{
			// A 3-cycle in row/column indices is exactly a permutation
			// pattern: the matching it forces maps the whole thing onto
			// the diagonal with nothing left over, so it reduces to
			// three singleton blocks rather than staying as one.
			name: "F pure 3-cycle permutation reduces to singletons", n: 3,
			ap: []int{0, 1, 2, 3}, ai: []int{1, 2, 0},
			wantNmatch: 3, wantNblocks: 3, wantR: []int{0, 1, 2, 3},
		},
		{
			// A fully dense 3x3 matrix: after the diagonal matching,
			// every node still reaches every other, one block.
			name: "G 3x3 fully dense, irreducible", n: 3,
			ap: []int{0, 3, 6, 9}, ai: []int{0, 1, 2, 0, 1, 2, 0, 1, 2},
			wantNmatch: 3, wantNblocks: 1, wantR: []int{0, 3},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := make([]int, test.n)
			q := make([]int, test.n)
			r := make([]int, test.n+1)
			work, nmatch, nblocks := Implementation{}.Order(test.n, test.ap, test.ai, 0, p, q, r)
			if work < 0 {
				t.Errorf("work = %v, want >= 0", work)
			}
			if nmatch != test.wantNmatch {
				t.Errorf("nmatch = %d, want %d", nmatch, test.wantNmatch)
			}
			if nblocks != test.wantNblocks {
				t.Errorf("nblocks = %d, want %d", nblocks, test.wantNblocks)
			}
			if diff := cmp.Diff(test.wantR, r); diff != "" {
				t.Errorf("r mismatch (-want +got):\n%s", diff)
			}
			flipped := false
			for _, qk := range q {
				if IsFlipped(qk) {
					flipped = true
				}
			}
			if flipped != test.anyFlipped {
				t.Errorf("flipped entry present = %t, want %t", flipped, test.anyFlipped)
			}
			checkOrderInvariants(t, test.n, test.ap, test.ai, p, q, r, nblocks, nmatch)
		})
	}
}

// buildRandomFullRankCSC builds an n-by-n pattern with a nonzero diagonal
// (guaranteeing full structural rank) plus a sprinkling of random
// off-diagonal entries, in CSC form.
func buildRandomFullRankCSC(rng *rand.Rand, n int) (ap, ai []int) {
	cols := make([][]int, n)
	for j := 0; j < n; j++ {
		cols[j] = append(cols[j], j) // guarantee at least one nonzero per row and column
		for i := 0; i < n; i++ {
			if i != j && rng.Float64() < 0.2 {
				cols[j] = append(cols[j], i)
			}
		}
		// Shuffle so the diagonal entry is not always first; otherwise the
		// cheap greedy pass alone always finds the full diagonal matching
		// and the augmenting-path search is never exercised.
		rng.Shuffle(len(cols[j]), func(a, b int) { cols[j][a], cols[j][b] = cols[j][b], cols[j][a] })
	}
	ap = make([]int, n+1)
	for j := 0; j < n; j++ {
		ap[j+1] = ap[j] + len(cols[j])
	}
	ai = make([]int, ap[n])
	for j := 0; j < n; j++ {
		copy(ai[ap[j]:ap[j+1]], cols[j])
	}
	return ap, ai
}

func TestOrderRoundTripFullRank(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 5, 10, 25} {
		ap, ai := buildRandomFullRankCSC(rng, n)
		p := make([]int, n)
		q := make([]int, n)
		r := make([]int, n+1)
		_, nmatch, nblocks := Implementation{}.Order(n, ap, ai, 0, p, q, r)
		if nmatch != n {
			t.Errorf("n=%d: nmatch = %d, want %d (full rank via diagonal)", n, nmatch, n)
		}
		for _, qk := range q {
			if IsFlipped(qk) {
				t.Errorf("n=%d: unexpected flipped entry in full-rank matching", n)
			}
		}
		checkOrderInvariants(t, n, ap, ai, p, q, r, nblocks, nmatch)
	}
}

func TestOrderIdempotentOnAlreadyBlockTriangular(t *testing.T) {
	// Two independent diagonal singleton blocks followed by a 2-cycle
	// block: already in BTF, ascending.
	//   col0: row0
	//   col1: row1
	//   col2: row2, row3
	//   col3: row2, row3
	n := 4
	ap := []int{0, 1, 2, 4, 6}
	ai := []int{0, 1, 2, 3, 2, 3}
	p := make([]int, n)
	q := make([]int, n)
	r := make([]int, n+1)
	_, nmatch, nblocks := Implementation{}.Order(n, ap, ai, 0, p, q, r)
	if nmatch != n {
		t.Fatalf("nmatch = %d, want %d", nmatch, n)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, p); diff != "" {
		t.Errorf("p mismatch (-want +got), want identity:\n%s", diff)
	}
	wantR := []int{0, 1, 2, 4}
	if diff := cmp.Diff(wantR, r); diff != "" {
		t.Errorf("r mismatch (-want +got):\n%s", diff)
	}
	if nblocks != 3 {
		t.Errorf("nblocks = %d, want 3", nblocks)
	}
	checkOrderInvariants(t, n, ap, ai, p, q, r, nblocks, nmatch)
}

func TestOrderWorkCapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(15)
		ap, ai := buildRandomFullRankCSC(rng, n)
		p := make([]int, n)
		q := make([]int, n)
		r := make([]int, n+1)
		maxWork := 0.01 * rng.Float64()
		work, nmatch, nblocks := Implementation{}.Order(n, ap, ai, maxWork, p, q, r)
		if work != -1 && work < 0 {
			t.Fatalf("work = %v, want -1 or >= 0", work)
		}
		checkOrderInvariants(t, n, ap, ai, p, q, r, nblocks, nmatch)
	}
}
