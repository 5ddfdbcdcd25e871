package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var boundaryCases = []TestCase{
	{
		Name:   "sites_on_edges",
		Sites:  []vec.Vec2{pt(0, 0.5), pt(0.5, 0), pt(0.999, 0.999), pt(0.5, 1)},
		Width:  20,
		Height: 20,
	},
	{
		Name:   "sites_outside",
		Sites:  []vec.Vec2{pt(-0.5, 0.5), pt(1.5, 0.5), pt(0.5, 2)},
		Width:  24,
		Height: 24,
	},
	{
		Name:   "just_outside",
		Sites:  []vec.Vec2{pt(-0.02, 0.5), pt(0.5, -0.02), pt(0.6, 0.6)},
		Width:  24,
		Height: 24,
	},
	{
		Name:   "single_pixel",
		Sites:  []vec.Vec2{pt(0.3, 0.3), pt(0.7, 0.7)},
		Width:  1,
		Height: 1,
	},
}

var shapeCases = []TestCase{
	{
		Name:   "wide",
		Sites:  []vec.Vec2{pt(0.1, 0.5), pt(0.5, 0.5), pt(0.9, 0.5)},
		Width:  48,
		Height: 12,
	},
	{
		Name:   "tall",
		Sites:  []vec.Vec2{pt(0.5, 0.2), pt(0.5, 0.8)},
		Width:  10,
		Height: 40,
	},
}

var manyCases = []TestCase{
	{
		// more sites than palette entries
		Name:   "circle_of_nine",
		Sites:  circle(0.5, 0.5, 0.35, 9),
		Width:  50,
		Height: 50,
	},
	{
		Name:   "grid_of_sixteen",
		Sites:  lattice(4, 4),
		Width:  40,
		Height: 40,
	},
}

// circle places n sites evenly on a circle.
func circle(cx, cy, r float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		res[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return res
}

// lattice places nx×ny sites at the centers of a regular grid of cells.
func lattice(nx, ny int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, nx*ny)
	for j := range ny {
		for i := range nx {
			res = append(res, pt((float64(i)+0.5)/float64(nx), (float64(j)+0.5)/float64(ny)))
		}
	}
	return res
}
