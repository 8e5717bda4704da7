// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gonum.org/v1/btf"
)

// writeSpyPlot renders a spy plot of P·A·Q to path: one point per nonzero
// of A, plotted at its permuted (column, row) position, with block
// boundaries from r drawn as separator lines. Matrix row 0 is drawn at
// the top, matching the usual way sparse-matrix practitioners read a spy
// plot.
func writeSpyPlot(path string, n int, ap, ai, p, q, r []int, nblocks int) error {
	rowPos := make([]int, n) // rowPos[original row] = new row position
	for k, i := range p {
		rowPos[i] = k
	}
	colPos := make([]int, n) // colPos[original column] = new column position
	for k, qk := range q {
		colPos[btf.Unflip(qk)] = k
	}

	pts := make(plotter.XYs, 0, ap[n])
	for j := 0; j < n; j++ {
		for pp := ap[j]; pp < ap[j+1]; pp++ {
			i := ai[pp]
			pts = append(pts, plotter.XY{
				X: float64(colPos[j]),
				Y: float64(n - 1 - rowPos[i]),
			})
		}
	}

	plt := plot.New()
	plt.Title.Text = "block triangular form"
	plt.X.Label.Text = "column"
	plt.Y.Label.Text = "row"
	plt.X.Min, plt.X.Max = -0.5, float64(n)-0.5
	plt.Y.Min, plt.Y.Max = -0.5, float64(n)-0.5

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	plt.Add(scatter)

	for _, boundary := range r[1:nblocks] {
		x := float64(boundary) - 0.5
		y := float64(n-1) - x
		line, err := plotter.NewLine(plotter.XYs{
			{X: x, Y: -0.5}, {X: x, Y: float64(n) - 0.5},
		})
		if err != nil {
			return err
		}
		plt.Add(line)
		line, err = plotter.NewLine(plotter.XYs{
			{X: -0.5, Y: y}, {X: float64(n) - 0.5, Y: y},
		})
		if err != nil {
			return err
		}
		plt.Add(line)
	}

	return plt.Save(6*vg.Inch, 6*vg.Inch, path)
}
