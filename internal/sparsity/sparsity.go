// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparsity provides a minimal row/column pair-list sparsity
// pattern, built incrementally and then frozen into the compressed-column
// (Ap, Ai) arrays that btf.Implementation.Order consumes.
package sparsity

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Builder accumulates nonzero (row, column) positions for an n-by-n
// pattern and freezes them into compressed-column form. The zero value is
// not usable; create one with NewBuilder.
//
// Builder mirrors gonum's graph.DirectedGraph: add edges one at a time in
// any order, then call Freeze once to obtain the fixed representation.
// A Builder must not be frozen more than once from the same goroutine
// concurrently with further calls to Add.
type Builder struct {
	n    int
	cols [][]int
}

// NewBuilder returns a Builder for an n-by-n pattern with no nonzeros.
func NewBuilder(n int) *Builder {
	if n < 0 {
		panic("sparsity: negative n")
	}
	return &Builder{n: n, cols: make([][]int, n)}
}

// Add records a nonzero at (row, col). Both must lie in [0, n). Duplicate
// (row, col) pairs are tolerated; Maxtrans treats repeated row entries in
// a column as harmless, so Add does not deduplicate.
func (b *Builder) Add(row, col int) {
	if row < 0 || row >= b.n || col < 0 || col >= b.n {
		panic(fmt.Sprintf("sparsity: entry (%d,%d) out of range [0,%d)", row, col, b.n))
	}
	b.cols[col] = append(b.cols[col], row)
}

// Freeze returns the compressed-column arrays Ap, Ai for the pattern built
// so far. Row indices within each column are sorted ascending; this is
// cosmetic (Order has no ordering requirement on Ai within a column) but
// makes Freeze's output deterministic regardless of Add order.
func (b *Builder) Freeze() (ap, ai []int) {
	ap = make([]int, b.n+1)
	for j, rows := range b.cols {
		ap[j+1] = ap[j] + len(rows)
	}
	ai = make([]int, ap[b.n])
	for j, rows := range b.cols {
		sorted := append([]int(nil), rows...)
		sort.Ints(sorted)
		copy(ai[ap[j]:ap[j+1]], sorted)
	}
	return ap, ai
}

// N returns the pattern's dimension.
func (b *Builder) N() int { return b.n }

// Read parses the simple sparsity text format: a first line holding n,
// followed by one "row col" pair per line. Blank lines and lines starting
// with '#' are ignored. It returns the frozen Ap, Ai arrays.
func Read(r io.Reader) (n int, ap, ai []int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			n, ap, ai, err = 0, nil, nil, fmt.Errorf("sparsity: %v", rec)
		}
	}()

	sc := bufio.NewScanner(r)
	var b *Builder
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if b == nil {
			if _, err := fmt.Sscanf(line, "%d", &n); err != nil {
				return 0, nil, nil, fmt.Errorf("sparsity: parsing n: %w", err)
			}
			b = NewBuilder(n)
			continue
		}
		var row, col int
		if _, err := fmt.Sscanf(line, "%d %d", &row, &col); err != nil {
			return 0, nil, nil, fmt.Errorf("sparsity: parsing entry %q: %w", line, err)
		}
		b.Add(row, col)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, nil, err
	}
	if b == nil {
		return 0, nil, nil, fmt.Errorf("sparsity: empty input, expected n on first line")
	}
	ap, ai = b.Freeze()
	return b.N(), ap, ai, nil
}

// Write emits n and every nonzero (row, col) pair of the compressed-column
// pattern Ap, Ai in the format Read accepts.
func Write(w io.Writer, n int, ap, ai []int) error {
	if _, err := fmt.Fprintln(w, n); err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		for p := ap[j]; p < ap[j+1]; p++ {
			if _, err := fmt.Fprintln(w, ai[p], j); err != nil {
				return err
			}
		}
	}
	return nil
}
