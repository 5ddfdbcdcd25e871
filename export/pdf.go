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

package export

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// run is a horizontal sequence of equally colored pixels.
type run struct {
	x, y, length int
}

// colorRuns splits every row of img into runs of equal color.  The colors
// are listed in order of first appearance.
func colorRuns(img image.Image) ([]color.NRGBA, map[color.NRGBA][]run) {
	b := img.Bounds()
	var order []color.NRGBA
	runs := make(map[color.NRGBA][]run)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		x := b.Min.X
		for x < b.Max.X {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			start := x
			for x++; x < b.Max.X; x++ {
				if color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA) != c {
					break
				}
			}
			if _, seen := runs[c]; !seen {
				order = append(order, c)
			}
			runs[c] = append(runs[c], run{
				x:      start - b.Min.X,
				y:      y - b.Min.Y,
				length: x - start,
			})
		}
	}
	return order, runs
}

// WritePDF writes img as a single-page PDF file, using one point per pixel.
// Alpha values are ignored.
func WritePDF(fileName string, img image.Image) error {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin in the bottom-left corner, images in the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	order, runs := colorRuns(img)
	for _, c := range order {
		page.SetFillColor(pdfcolor.DeviceRGB(
			float64(c.R)/255, float64(c.G)/255, float64(c.B)/255))
		for _, r := range runs[c] {
			page.Rectangle(float64(r.x), float64(r.y), float64(r.length), 1)
		}
		page.Fill()
	}

	return page.Close()
}
