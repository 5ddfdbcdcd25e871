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

import "image/color"

// Palette lists the region colors. Site i is painted with
// Palette[i%len(Palette)].
var Palette = [...]color.NRGBA{
	{R: 255, G: 128, B: 128, A: 255},
	{R: 128, G: 255, B: 128, A: 255},
	{R: 128, G: 128, B: 255, A: 255},
	{R: 255, G: 255, B: 128, A: 255},
	{R: 255, G: 128, B: 255, A: 255},
	{R: 128, G: 255, B: 255, A: 255},
}

var (
	// Unpainted is the color of pixels which the growing regions of an
	// animation have not reached yet.  No palette entry is white.
	Unpainted = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// MarkerColor is used for the site markers.
	MarkerColor = color.NRGBA{A: 255}
)

// ColorFor returns the region color for the site with the given index.
func ColorFor(index int) color.NRGBA {
	n := len(Palette)
	return Palette[((index%n)+n)%n]
}
