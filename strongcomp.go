// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btf

// Node states during the strongly-connected-component search. A node
// starts unvisited, becomes unassigned once discovered and pushed onto
// the component stack, and is finally assigned a block number once its
// component closes.
const (
	unvisited  = -2
	unassigned = -1
)

// Strongcomp decomposes the directed graph on n nodes whose adjacency is
// the column-oriented sparsity of A (if q is nil) or of A·Q (if q is
// non-nil) into strongly connected components, using a non-recursive
// version of Tarjan's algorithm so that stack depth is bounded by n
// regardless of the host's call-stack limit.
//
// ap, ai hold A in compressed-column form. If q is non-nil, node j's
// out-edges are read from column Unflip(q[j]) of A rather than column j;
// flipped entries of q are preserved through the search and are resolved
// the same way as unflipped ones.
//
// p must have length n and r length n+1. On return, p is the row/node
// permutation produced by placing each component's members, in ascending
// node order, into contiguous positions; r holds the resulting block
// boundaries (r[b]..r[b+1] is the extent of block b, r[0]==0,
// r[nblocks]==n); and, if q is non-nil, q is rewritten in place so that
// q[k] is the entry q held for node p[k] — q composed with p. Components are numbered in reverse topological order of the
// condensation, so block 0 is the sink-most component. Strongcomp
// returns the number of components found.
func (Implementation) Strongcomp(n int, ap, ai []int, q, p, r []int) (nblocks int) {
	checkCSC(n, ap, ai)
	if len(p) != n {
		panic(ErrPLength)
	}
	if len(r) != n+1 {
		panic(ErrRLength)
	}
	if q != nil && len(q) != n {
		panic(ErrQLength)
	}

	flag := make([]int, n)
	low := make([]int, n)
	disc := make([]int, n) // discovery timestamp ("Time" in the spec)
	for j := range flag {
		flag[j] = unvisited
	}

	cstack := make([]int, 0, n) // component-in-progress stack
	jstack := make([]int, 0, n) // DFS path, by node index
	pstack := make([]int, 0, n) // resumed scan position per jstack frame

	var timestamp int

	for root := 0; root < n; root++ {
		if flag[root] != unvisited {
			continue
		}
		jstack = append(jstack, root)
		pstack = append(pstack, 0)

		for len(jstack) > 0 {
			head := len(jstack) - 1
			j := jstack[head]

			jj := j
			if q != nil {
				jj = Unflip(q[j])
			}
			pend := ap[jj+1]

			if flag[j] == unvisited {
				// Prework: first arrival at j.
				cstack = append(cstack, j)
				timestamp++
				disc[j] = timestamp
				low[j] = timestamp
				flag[j] = unassigned
				pstack[head] = ap[jj]
			}

			p0 := pstack[head]
			advanced := false
			for ; p0 < pend; p0++ {
				i := ai[p0]
				switch {
				case flag[i] == unvisited:
					pstack[head] = p0 + 1
					jstack = append(jstack, i)
					pstack = append(pstack, 0)
					advanced = true
				case flag[i] == unassigned:
					if disc[i] < low[j] {
						low[j] = disc[i]
					}
					continue
				default:
					// i is already assigned to a closed
					// component; a forward/cross edge to
					// finished work, ignore it.
					continue
				}
				break
			}
			if advanced {
				continue
			}

			// Postwork: the adjacency of j is exhausted.
			jstack = jstack[:head]
			pstack = pstack[:head]
			if low[j] == disc[j] {
				for {
					w := cstack[len(cstack)-1]
					cstack = cstack[:len(cstack)-1]
					flag[w] = nblocks
					if w == j {
						break
					}
				}
				nblocks++
			}
			if len(jstack) > 0 {
				parent := jstack[len(jstack)-1]
				if low[j] < low[parent] {
					low[parent] = low[j]
				}
			}
		}
	}

	// Build R as an exclusive prefix sum of per-block counts, then
	// place each node into P at its block's next free slot. disc is
	// reused as scratch for the next-free-slot cursor; low and cstack
	// are separate allocations and do not alias p or r.
	for b := 0; b < nblocks; b++ {
		r[b] = 0
	}
	for j := 0; j < n; j++ {
		r[flag[j]]++
	}
	sum := 0
	for b := 0; b < nblocks; b++ {
		c := r[b]
		r[b] = sum
		sum += c
	}
	r[nblocks] = n

	copy(disc[:nblocks], r[:nblocks])
	for j := 0; j < n; j++ {
		b := flag[j]
		p[disc[b]] = j
		disc[b]++
	}

	if q != nil {
		newQ := make([]int, n)
		for k := 0; k < n; k++ {
			newQ[k] = q[p[k]]
		}
		copy(q, newQ)
	}

	return nblocks
}
