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
	"math"

	"seehuhn.de/go/geom/vec"
)

// metric selects the distance used by the nearest-site search.
type metric int

const (
	// squaredDist compares squared Euclidean distances.
	squaredDist metric = iota

	// euclideanDist compares true Euclidean distances.
	euclideanDist
)

// nearest returns the index of the site closest to (fx, fy) together with
// its distance under m.
//
// Sites are examined in index order and a site only replaces the current
// candidate if it is strictly closer, so exact ties go to the lowest index.
// If no site has a distance below math.MaxFloat64, site 0 is returned.
func nearest(sites []vec.Vec2, fx, fy float64, m metric) (int, float64) {
	best := 0
	bestDist := math.MaxFloat64
	for i, s := range sites {
		dx := s.X - fx
		dy := s.Y - fy
		d := dx*dx + dy*dy
		if m == euclideanDist {
			d = math.Sqrt(d)
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, bestDist
}
