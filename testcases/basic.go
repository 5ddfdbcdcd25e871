package testcases

import "seehuhn.de/go/geom/vec"

var basicCases = []TestCase{
	{
		Name:   "single_center",
		Sites:  []vec.Vec2{pt(0.5, 0.5)},
		Width:  4,
		Height: 4,
	},
	{
		Name:   "two_horizontal",
		Sites:  []vec.Vec2{pt(0.25, 0.5), pt(0.75, 0.5)},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "five_default",
		Sites:  []vec.Vec2{pt(0.2, 0.3), pt(0.8, 0.15), pt(0.55, 0.5), pt(0.15, 0.85), pt(0.7, 0.8)},
		Width:  64,
		Height: 64,
	},
}

var tieCases = []TestCase{
	{
		// (0.5, 0.5) is equidistant from both sites
		Name:   "corners_2x2",
		Sites:  []vec.Vec2{pt(0, 0), pt(1, 1)},
		Width:  2,
		Height: 2,
	},
	{
		Name:   "duplicate_sites",
		Sites:  []vec.Vec2{pt(0.5, 0.5), pt(0.5, 0.5), pt(0.25, 0.25)},
		Width:  16,
		Height: 16,
	},
	{
		// the vertical bisector x = 0.5 runs through pixel column 8
		Name:   "bisector_on_column",
		Sites:  []vec.Vec2{pt(0.25, 0.5), pt(0.75, 0.5)},
		Width:  16,
		Height: 8,
	},
}
