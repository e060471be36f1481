// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/zetaml/linalg"
)

const plotSize = 5 * vg.Inch

// renderWireframe draws the edges between projected points (x, y in NDC)
// and writes the figure to path as PNG.
func renderWireframe(path string, ndc []*linalg.Vector, edges [][2]int) error {
	p := plot.New()
	p.Title.Text = "zetaml: projected cube"
	p.X.Label.Text = "x (NDC)"
	p.Y.Label.Text = "y (NDC)"
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1
	p.Add(plotter.NewGrid())

	for _, e := range edges {
		if e[0] >= len(ndc) || e[1] >= len(ndc) {
			return fmt.Errorf("edge %v: %w", e, linalg.ErrOutOfRange)
		}
		a, b := ndc[e[0]], ndc[e[1]]
		line, err := plotter.NewLine(plotter.XYs{{X: a.X(), Y: a.Y()}, {X: b.X(), Y: b.Y()}})
		if err != nil {
			return fmt.Errorf("edge %v: %w", e, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
		p.Add(line)
	}

	pts := make(plotter.XYs, len(ndc))
	for i, v := range ndc {
		pts[i].X, pts[i].Y = v.X(), v.Y()
	}
	corners, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("corners: %w", err)
	}
	corners.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(corners)

	canvas := vgimg.New(plotSize, plotSize)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
