/*
 * bfactor.go, part of fusechem.
 *
 * Copyright 2026 The fusechem Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemplot draws plots of per-residue properties of structures.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	chem "github.com/sysu-software/fusechem"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//BfactorProfile plots the mean b-factor of each residue of the first chain of s against the
//residue number, marking the residues whose labels are in candidates (see chem.CandidateResidues),
//and saves the plot to path. The format is given by the extension of path (png, svg, pdf...).
func BfactorProfile(s *chem.Structure, candidates []string, path string) error {
	bf, err := chem.ResidueBfactors(s)
	if err != nil {
		return chem.ErrDecorate(err, "chemplot.BfactorProfile")
	}
	if len(bf) == 0 {
		return chem.NewInsufficientDataError("no residues to plot", 0, 1, "chemplot.BfactorProfile")
	}
	rank := make(map[string]int, len(candidates))
	for i, v := range candidates {
		rank[v] = i
	}
	profile := make(plotter.XYs, len(bf))
	for i, v := range bf {
		profile[i].X = float64(v.Residue.ID.Number)
		profile[i].Y = v.Mean
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = fmt.Sprintf("B-factors of %s", s.Name)
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "Mean B-factor"
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(profile)
	if err != nil {
		return fmt.Errorf("chemplot.BfactorProfile: %w", err)
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.Gray{Y: 100}
	p.Add(l)
	//each candidate is colored by its rank, lowest b-factor first.
	for _, v := range bf {
		r, ok := rank[v.Residue.Label()]
		if !ok {
			continue
		}
		pt := plotter.XYs{{X: float64(v.Residue.ID.Number), Y: v.Mean}}
		sc, err := plotter.NewScatter(pt)
		if err != nil {
			return fmt.Errorf("chemplot.BfactorProfile: %w", err)
		}
		red, green, blue := colors(r, len(candidates))
		sc.GlyphStyle.Color = color.RGBA{R: red, G: green, B: blue, A: 255}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return chem.WrapInputError(err, "saving plot", "chemplot.BfactorProfile")
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

//colors returns a color for the key-th of steps elements, going from red to blue.
func colors(key, steps int) (r, g, b uint8) {
	if steps < 1 {
		steps = 1
	}
	h := 240.0 * float64(key) / float64(steps)
	return iHVS2RGB(h, 1.0, 1.0)
}
