// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command btforder orders a sparse matrix into block triangular form and
// reports its matching and block structure.
package main // import "gonum.org/v1/btf/cmd/btforder"

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gonum.org/v1/btf"
	"gonum.org/v1/btf/internal/batchorder"
	"gonum.org/v1/btf/internal/sparsity"
)

func main() {
	log.SetPrefix("btforder: ")
	log.SetFlags(0)

	maxWork := flag.Float64("maxwork", 0, "abort the matching search after maxwork*nnz(A) units of work (0 means unlimited)")
	plotPath := flag.String("plot", "", "write a spy plot of the permuted matrix to this PNG file")
	batchDir := flag.String("batch", "", "order every sparsity file in this directory concurrently, instead of reading one matrix from stdin or from the first argument")
	workers := flag.Int("workers", 4, "maximum concurrent Order calls in -batch mode")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: btforder [options] [FILE]

Reads an n-by-n sparsity pattern (n on the first line, one "row col" pair
per nonzero on following lines) from FILE, or from stdin if FILE is
omitted, computes its block triangular form, and reports the matching
and block statistics.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	p := message.NewPrinter(language.AmericanEnglish)

	if *batchDir != "" {
		if err := runBatch(p, *batchDir, *maxWork, *workers); err != nil {
			log.Fatalf("batch ordering failed: %+v", err)
		}
		return
	}

	in := os.Stdin
	name := "stdin"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("could not open %s: %+v", name, err)
		}
		defer f.Close()
		in = f
	}

	n, ap, ai, err := sparsity.Read(in)
	if err != nil {
		log.Fatalf("could not read sparsity pattern: %+v", err)
	}

	pp := make([]int, n)
	q := make([]int, n)
	r := make([]int, n+1)
	work, nmatch, nblocks := btf.Implementation{}.Order(n, ap, ai, *maxWork, pp, q, r)

	report(p, name, n, ap[n], work, nmatch, nblocks, r)

	if *plotPath != "" {
		if err := writeSpyPlot(*plotPath, n, ap, ai, pp, q, r, nblocks); err != nil {
			log.Fatalf("could not write plot: %+v", err)
		}
	}
}

func runBatch(p *message.Printer, dir string, maxWork float64, workers int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var ms []batchorder.Matrix
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		n, ap, ai, err := sparsity.Read(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		ms = append(ms, batchorder.Matrix{Name: e.Name(), N: n, Ap: ap, Ai: ai})
	}

	results, err := batchorder.Run(context.Background(), ms, maxWork, workers)
	if err != nil {
		return err
	}
	for i, res := range results {
		report(p, res.Name, ms[i].N, ms[i].Ap[ms[i].N], res.Work, res.Nmatch, res.Nblocks, res.R)
	}
	return nil
}

func report(p *message.Printer, name string, n, nnz int, work float64, nmatch, nblocks int, r []int) {
	p.Printf("%s: n=%d nnz=%d nmatch=%d nblocks=%d work=%.0f\n", name, n, nnz, nmatch, nblocks, work)
	p.Printf("%s: block sizes=%v\n", name, btf.BlockSizes(r))
}
