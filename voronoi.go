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

// Package voronoi rasterizes Voronoi diagrams of a few sites in the unit
// square.
//
// Every pixel is assigned to its nearest site by brute-force distance
// comparison and painted with the site's palette color. [RenderStatic]
// produces one finished image, [RenderAnimation] produces a sequence of
// frames in which the regions grow outwards from the sites at uniform speed
// until they meet. Both draw a small black marker at every site.
//
// Site coordinates are normalized: pixel (x, y) of a width×height grid
// corresponds to the point (x/width, y/height). Images use the
// non-premultiplied [image.NRGBA] format with the origin in the top-left
// corner.
package voronoi

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNoSites is returned when a diagram is requested for an empty site set.
	ErrNoSites = errors.New("voronoi: no sites")

	// ErrInvalidSize is returned when the requested grid has a non-positive
	// width or height.
	ErrInvalidSize = errors.New("voronoi: invalid grid size")

	// ErrInvalidStep is returned by animations if the radius step is not
	// positive.
	ErrInvalidStep = errors.New("voronoi: invalid radius step")
)

// DefaultSize is the width and height of the grid used by the demo command.
const DefaultSize = 400

// checkArgs validates the arguments common to all render operations.
// It must be called before any pixel memory is allocated.
func checkArgs(sites []vec.Vec2, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(sites) == 0 {
		return ErrNoSites
	}
	return nil
}
