// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

// Implementation provides the maximum-transversal, partial-match
// completion, and strongly-connected-component algorithms that Order
// composes. Its methods are pure: they read only their arguments and
// write only to caller-supplied output slices, so a single
// Implementation value may be shared and its methods called
// concurrently from multiple goroutines as long as each call operates
// on disjoint slices.
type Implementation struct{}

// Maxtrans computes a maximum, or work-capped, bipartite matching between
// the rows and columns of the n-by-n matrix A whose nonzero pattern is
// held in Ap, Ai (compressed-column form: column j occupies
// Ai[Ap[j]:Ap[j+1]]).
//
// match must have length n. On return match[i] holds the column matched
// to row i, or Empty if row i could not be matched. Maxtrans first seeds
// the matching with an O(nnz(A)) cheap pass (scanning each column once
// for an as-yet-unmatched row), then extends it by searching for
// augmenting paths, via a non-recursive depth-first search over the
// bipartite graph, from every column left unmatched by the cheap pass.
//
// If maxWork is positive, the augmenting-path search aborts as soon as it
// has performed more than maxWork*nnz(A) units of work; the returned work
// is then -1 and match holds whatever matching had been built up to that
// point. If maxWork is zero or negative the search runs to completion and
// work reports the actual work performed.
func (Implementation) Maxtrans(n int, ap, ai []int, match []int, maxWork float64) (nmatch int, work float64) {
	checkCSC(n, ap, ai)
	if len(match) != n {
		panic(ErrPLength)
	}
	if n == 0 {
		return 0, 0
	}

	// colMatch[j] is the row currently matched to column j, or Empty.
	// match[i] is the column currently matched to row i, or Empty; it
	// is the inverse of colMatch and is what the caller gets back.
	colMatch := make([]int, n)
	for i := range match {
		match[i] = Empty
	}
	for j := range colMatch {
		colMatch[j] = Empty
	}

	// Cheap match: one O(nnz(A)) pass, seeding as much of the matching
	// as possible before any augmenting search is attempted. This work
	// is not counted against maxWork.
	for j := 0; j < n; j++ {
		for p := ap[j]; p < ap[j+1]; p++ {
			i := ai[p]
			if match[i] == Empty {
				match[i] = j
				colMatch[j] = i
				break
			}
		}
	}

	for i := 0; i < n; i++ {
		if match[i] != Empty {
			nmatch++
		}
	}

	limit := -1.0
	if maxWork > 0 {
		limit = maxWork * float64(ap[n])
	}

	// mark[j] == attempt records that column j has already been visited
	// during the current augmenting-path attempt, avoiding cycles
	// within a single search without needing to clear the array
	// between attempts.
	mark := make([]int, n)
	var attempt int

	// Explicit DFS stack: one frame per column currently on the search
	// path. pos resumes the column's row scan across re-entries within
	// the same attempt; viaRow is the row through which this frame was
	// reached from its parent (Empty for the root), used to rewrite
	// the matching along the path once an augmenting path is found.
	type frame struct {
		col    int
		pos    int
		viaRow int
	}
	stack := make([]frame, 0, n)

	var workDone float64
	capped := false

search:
	for jstart := 0; jstart < n; jstart++ {
		if colMatch[jstart] != Empty {
			continue
		}
		attempt++
		stack = append(stack[:0], frame{col: jstart, pos: ap[jstart], viaRow: Empty})
		mark[jstart] = attempt

		found := false
		var foundRow int

		for len(stack) > 0 {
			head := len(stack) - 1
			col := stack[head].col
			p := stack[head].pos
			pend := ap[col+1]

			advancedOrFound := false
			for ; p < pend; p++ {
				workDone++
				if limit >= 0 && workDone > limit {
					capped = true
					break search
				}
				i := ai[p]
				if match[i] == Empty {
					found = true
					foundRow = i
					advancedOrFound = true
					break
				}
				j2 := match[i]
				if mark[j2] != attempt {
					mark[j2] = attempt
					stack[head].pos = p + 1
					stack = append(stack, frame{col: j2, pos: ap[j2], viaRow: i})
					advancedOrFound = true
					break
				}
			}
			if found {
				break
			}
			if !advancedOrFound {
				stack = stack[:head]
			}
		}

		if found {
			newRow := foundRow
			for t := len(stack) - 1; t >= 0; t-- {
				j := stack[t].col
				colMatch[j] = newRow
				match[newRow] = j
				if t > 0 {
					newRow = stack[t].viaRow
				}
			}
			nmatch++
		}
	}

	if capped {
		return nmatch, -1
	}
	return nmatch, workDone
}

// checkCSC panics with a descriptive Error if n, ap, ai do not describe a
// well-formed compressed-column pattern shape. It does not validate that
// Ap is nondecreasing or that Ai entries lie in [0,n): those conditions
// are the caller's responsibility, and violating them is undefined
// behavior rather than a checked error.
func checkCSC(n int, ap, ai []int) {
	if n < 0 {
		panic(ErrNegativeN)
	}
	if len(ap) != n+1 {
		panic(ErrApLength)
	}
	if len(ai) != ap[n] {
		panic(ErrAiLength)
	}
}
