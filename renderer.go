// seehuhn.de/go/voronoi - pixel-grid Voronoi diagrams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package voronoi

import (
	"image"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/geom/vec"
)

// Renderer holds the parameters for rendering Voronoi diagrams.
// A Renderer does not keep state between calls and can be used for any
// number of site sets.  Concurrent calls are safe as long as the fields
// are not modified.
type Renderer struct {
	// Width and Height give the grid size in pixels.  Both must be positive.
	Width, Height int

	// Step is the growth of the region radius between two animation steps,
	// in pixels.  Must be positive.
	Step int

	// Workers is the number of goroutines used to classify the pixels.
	// Values below 2 select a sequential scan.  The output does not
	// depend on this value.
	Workers int

	// Complete makes animations end with an additional frame in which all
	// pixels are painted.  Without this, pixels far from all sites may
	// still be unpainted in the last frame.
	Complete bool
}

// NewRenderer returns a Renderer for a width×height grid, using the
// default radius step of 2 pixels and a sequential scan.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:   width,
		Height:  height,
		Step:    defaultStep,
		Workers: 1,
	}
}

const defaultStep = 2

// RenderStatic returns the Voronoi diagram of sites on a width×height grid,
// with site markers drawn on top.
func RenderStatic(sites []vec.Vec2, width, height int) (*image.NRGBA, error) {
	return NewRenderer(width, height).Static(sites)
}

// RenderAnimation returns the frames of an animation in which the Voronoi
// regions grow from the sites until they meet.  See [Renderer.Frames].
func RenderAnimation(sites []vec.Vec2, width, height int) ([]*image.NRGBA, error) {
	return NewRenderer(width, height).Animation(sites)
}

// classification records the nearest site of every pixel and the distance
// to it, in row-major order.
type classification struct {
	site []int
	dist []float64
}

// classify finds the nearest site for every pixel of the grid.
func (r *Renderer) classify(sites []vec.Vec2, m metric) *classification {
	w, h := r.Width, r.Height
	c := &classification{
		site: make([]int, w*h),
		dist: make([]float64, w*h),
	}

	scanRows := func(yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			fy := float64(y) / float64(h)
			row := y * w
			for x := range w {
				fx := float64(x) / float64(w)
				c.site[row+x], c.dist[row+x] = nearest(sites, fx, fy, m)
			}
		}
	}

	workers := min(r.Workers, h)
	if workers < 2 {
		scanRows(0, h)
		return c
	}

	// Every worker writes a disjoint band of rows.
	band := (h + workers - 1) / workers
	var g errgroup.Group
	for yMin := 0; yMin < h; yMin += band {
		yMax := min(yMin+band, h)
		g.Go(func() error {
			scanRows(yMin, yMax)
			return nil
		})
	}
	_ = g.Wait()
	return c
}
