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
	"cmp"
	"fmt"
	"image"
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Animation returns all frames of the growing-regions animation.
// See [Renderer.Frames] for a description of the frames.
func (r *Renderer) Animation(sites []vec.Vec2) ([]*image.NRGBA, error) {
	frames, err := r.Frames(sites)
	if err != nil {
		return nil, err
	}
	return slices.Collect(frames), nil
}

// Frames returns an iterator over the frames of an animation in which every
// site emits its color, spreading outwards at uniform speed.
//
// The region radius starts at 0 and grows by r.Step pixels per step, for as
// long as it is smaller than half the grid diagonal.  In every step, each
// unpainted pixel whose distance to its nearest site is at most the current
// radius is painted with that site's color.  Once painted, a pixel keeps its
// color.  A frame is emitted after every step with an even radius; with the
// default step of 2 this is every step.  Site markers are drawn on the
// emitted frames, but not on the working grid.
//
// Pixels far away from all sites may not be reached before the radius limit;
// these stay [Unpainted] unless r.Complete is set.  Painted pixels always
// have the color [Renderer.Static] gives them, up to differences in rounding
// between squared and true distances.
//
// Every yielded frame is a new image, owned by the caller.  The iterator can
// be used more than once and produces the same frames each time.
func (r *Renderer) Frames(sites []vec.Vec2) (iter.Seq[*image.NRGBA], error) {
	if err := checkArgs(sites, r.Width, r.Height); err != nil {
		return nil, err
	}
	if r.Step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, r.Step)
	}

	// The nearest site of a pixel does not depend on the radius, so the
	// pixels are classified once and then revealed in order of increasing
	// distance.  This paints exactly the pixels a rescan of all unpainted
	// pixels would paint in each step.
	c := r.classify(sites, euclideanDist)
	order := make([]int, len(c.dist))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(c.dist[a], c.dist[b])
	})

	w, h, step := r.Width, r.Height, r.Step
	maxRadius := math.Sqrt(float64(w*w+h*h)) / 2
	scale := float64(max(w, h))
	complete := r.Complete
	log := Logger()

	frames := func(yield func(*image.NRGBA) bool) {
		work := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < len(work.Pix); i += 4 {
			setPix(work.Pix[i:], Unpainted)
		}

		next := 0 // order[:next] are painted
		paint := func(limit float64) {
			for next < len(order) {
				i := order[next]
				if !(c.dist[i] <= limit) {
					break
				}
				setPix(work.Pix[4*i:], ColorFor(c.site[i]))
				next++
			}
		}
		emit := func() bool {
			frame := cloneNRGBA(work)
			DrawMarkers(frame, sites)
			return yield(frame)
		}

		numFrames := 0
		for radius := 0; float64(radius) < maxRadius; radius += step {
			paint(float64(radius) / scale)
			if radius%2 != 0 {
				continue
			}
			if !emit() {
				return
			}
			numFrames++
		}
		unpainted := len(order) - next
		if complete && unpainted > 0 {
			paint(math.Inf(1))
			if !emit() {
				return
			}
			numFrames++
		}

		log.Debug("render animation",
			"width", w, "height", h, "sites", len(sites),
			"step", step, "frames", numFrames, "unpainted", unpainted)
	}
	return frames, nil
}

// cloneNRGBA returns a deep copy of img.
func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	return &image.NRGBA{
		Pix:    slices.Clone(img.Pix),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
}
