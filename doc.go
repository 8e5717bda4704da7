// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package btf computes a block triangular form ordering of a square sparse
// matrix.
//
// Given the nonzero pattern of a square matrix A in compressed-column
// (CSC) form, Order computes row and column permutations P and Q and a
// set of block boundaries R such that P·A·Q is block upper triangular:
// the diagonal is zero-free whenever A has structural full rank, and each
// diagonal block is irreducible (strongly connected).
//
// The algorithm is Duff's MC21-style maximum transversal followed by
// Tarjan's strongly connected components algorithm applied to the
// matched, permuted graph, the same two-stage construction used by
// SuiteSparse's BTF package. See Implementation for the exported
// operations and package-level examples for typical use.
package btf // import "gonum.org/v1/btf"
