// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batchorder runs btf.Implementation.Order over many independent
// matrices concurrently, demonstrating that Order's only concurrency
// requirement is disjoint argument slices per call.
package batchorder

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gonum.org/v1/btf"
)

// Matrix is one input to a batch ordering run: an n-by-n pattern in
// compressed-column form.
type Matrix struct {
	Name   string
	N      int
	Ap, Ai []int
}

// Result holds the ordering produced for one Matrix, indexed by its
// position in the input slice.
type Result struct {
	Name            string
	P, Q, R         []int
	Work            float64
	Nmatch, Nblocks int
}

// Run orders every matrix in ms concurrently, bounded to workers goroutines
// at a time (a workers value <= 0 means unbounded). Each call runs against
// its own freshly allocated P, Q, R, so no two goroutines ever touch the
// same slice; this is exactly the disjoint-arguments concurrency Order
// allows. If any Order call panics on malformed input, Run propagates the
// first such error and cancels the remaining work.
func Run(ctx context.Context, ms []Matrix, maxWork float64, workers int) ([]Result, error) {
	results := make([]Result, len(ms))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var impl btf.Implementation
	for i, m := range ms {
		i, m := i, m
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = toError(r)
				}
			}()

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			p := make([]int, m.N)
			q := make([]int, m.N)
			r := make([]int, m.N+1)
			work, nmatch, nblocks := impl.Order(m.N, m.Ap, m.Ai, maxWork, p, q, r)
			results[i] = Result{
				Name:    m.Name,
				P:       p,
				Q:       q,
				R:       r,
				Work:    work,
				Nmatch:  nmatch,
				Nblocks: nblocks,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("batchorder: %v", r)
}
