/*
 * distplot.go, part of pairdist
 *
 * Copyright 2026 The pairdist authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

// Package chemplot plots the distances obtained along a trajectory.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/pairdist"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Size of the saved plots.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicDistPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = "Distance"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// DistancePlot plots the distance of every pair in the table against the
// timestep, one line per pair, and saves it to filename. The format is
// taken from the extension of filename (png, svg, pdf, eps...).
// Timesteps are plotted in the order they appear in the table.
func DistancePlot(T *pairdist.Table, title, filename string) error {
	if T.Len() == 0 {
		return fmt.Errorf("chemplot.DistancePlot: no timesteps to plot")
	}
	p := basicDistPlot(title)
	steps := T.Steps()
	pairs := T.Pairs()
	for key, pair := range pairs {
		series, _ := T.Series(pair)
		pts := make(plotter.XYs, len(series))
		for i, d := range series {
			pts[i].X = float64(steps[i])
			pts[i].Y = d
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chemplot.DistancePlot: pair %s: %w", pair.Name(), err)
		}
		r, g, b := colors(key, len(pairs))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(pair.Name(), l)
	}
	return p.Save(Width, Height, filename)
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	conversion := 255.0 * v
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
	default: //5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors spreads steps colors over the hue circle, skipping the yellows,
// which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	if steps < 1 {
		steps = 1
	}
	hp := float64(key)*260.0/float64(steps) + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
