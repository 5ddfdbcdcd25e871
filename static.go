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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Static returns the Voronoi diagram of sites.  Every pixel is painted with
// the color of its nearest site, using squared Euclidean distances, and the
// site markers are drawn last.
//
// The result only depends on sites, r.Width and r.Height.
func (r *Renderer) Static(sites []vec.Vec2) (*image.NRGBA, error) {
	if err := checkArgs(sites, r.Width, r.Height); err != nil {
		return nil, err
	}

	Logger().Debug("render static",
		"width", r.Width, "height", r.Height,
		"sites", len(sites), "workers", max(r.Workers, 1))

	c := r.classify(sites, squaredDist)
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i, idx := range c.site {
		setPix(img.Pix[4*i:], ColorFor(idx))
	}
	DrawMarkers(img, sites)
	return img, nil
}

// setPix writes c to the first four bytes of pix.
func setPix(pix []uint8, c color.NRGBA) {
	pix[0] = c.R
	pix[1] = c.G
	pix[2] = c.B
	pix[3] = c.A
}
