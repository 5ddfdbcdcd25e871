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
	"math"

	"seehuhn.de/go/geom/vec"
)

// markerOffsets lists the pixels of a site marker, relative to the site.
var markerOffsets = [...]image.Point{
	{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// DrawMarkers paints a small plus-shaped marker in [MarkerColor] at the
// position of every site.  A site at (x, y) is marked at pixel
// (floor(x·width), floor(y·height)) and its four direct neighbours.
//
// Marker pixels which fall outside the image are skipped, so a site just
// left of or above the image still marks its neighbour inside the image.
func DrawMarkers(img *image.NRGBA, sites []vec.Vec2) {
	b := img.Rect
	w, h := float64(b.Dx()), float64(b.Dy())
	for _, s := range sites {
		px := math.Floor(s.X * w)
		py := math.Floor(s.Y * h)
		// A center further out than one pixel has no neighbour inside.
		if !(px >= -1 && px < w && py >= -1 && py < h) {
			continue
		}
		center := b.Min.Add(image.Point{X: int(px), Y: int(py)})
		for _, d := range markerOffsets {
			p := center.Add(d)
			if p.In(b) {
				img.SetNRGBA(p.X, p.Y, MarkerColor)
			}
		}
	}
}
