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

// Package sites creates and stores the site sets for Voronoi diagrams.
//
// Site sets can be sampled at random from a seeded generator, so that
// diagrams are reproducible, or read from YAML files of the form
//
//	sites:
//	  - {x: 0.25, y: 0.5}
//	  - {x: 0.75, y: 0.5}
package sites

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultCount is the number of sites used by the demo command.
const DefaultCount = 5

// DefaultBounds is the region sites are sampled from by default.
// It keeps sites away from the border of the unit square.
var DefaultBounds = rect.Rect{LLx: 0.1, LLy: 0.1, URx: 0.9, URy: 0.9}

var (
	// ErrInvalidCount is returned by Generate for a non-positive count.
	ErrInvalidCount = errors.New("sites: invalid count")

	// ErrInvalidBounds is returned by Generate if the sampling bounds are
	// empty or not finite.
	ErrInvalidBounds = errors.New("sites: invalid bounds")

	// ErrEmpty is returned by Load if the file contains no sites.
	ErrEmpty = errors.New("sites: no sites in file")
)

// Generate returns count sites, sampled independently and uniformly from
// bounds using rng.
func Generate(rng *rand.Rand, count int, bounds rect.Rect) ([]vec.Vec2, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	for _, v := range []float64{bounds.LLx, bounds.LLy, bounds.URx, bounds.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
		}
	}
	if bounds.URx < bounds.LLx || bounds.URy < bounds.LLy {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
	}

	dx := bounds.URx - bounds.LLx
	dy := bounds.URy - bounds.LLy
	res := make([]vec.Vec2, count)
	for i := range res {
		res[i] = vec.Vec2{
			X: bounds.LLx + rng.Float64()*dx,
			Y: bounds.LLy + rng.Float64()*dy,
		}
	}
	return res, nil
}

// NewRand returns a random number generator with the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// file is the YAML representation of a site set.
type file struct {
	Sites []point `yaml:"sites"`
}

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load reads a site set in YAML format.
func Load(r io.Reader) ([]vec.Vec2, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	err := dec.Decode(&f)
	if err == io.EOF {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, fmt.Errorf("sites: %w", err)
	}
	if len(f.Sites) == 0 {
		return nil, ErrEmpty
	}

	res := make([]vec.Vec2, len(f.Sites))
	for i, p := range f.Sites {
		res[i] = vec.Vec2{X: p.X, Y: p.Y}
	}
	return res, nil
}

// Save writes a site set in YAML format.
func Save(w io.Writer, sites []vec.Vec2) error {
	f := file{Sites: make([]point, len(sites))}
	for i, s := range sites {
		f.Sites[i] = point{X: s.X, Y: s.Y}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("sites: %w", err)
	}
	return enc.Close()
}
