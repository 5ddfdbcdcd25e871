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

// Package export writes Voronoi diagrams and animations to files.
//
// Static diagrams can be stored as PNG images or as PDF files in which every
// horizontal run of equally colored pixels becomes a filled rectangle.
// Animations are stored as animated GIF images or as numbered PNG frames.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"seehuhn.de/go/voronoi"
)

// DefaultDelay is the GIF frame delay in units of 1/100 s.
const DefaultDelay = 5

// ErrNoFrames is returned when an animation without frames is written.
var ErrNoFrames = errors.New("export: no frames")

// Scale enlarges img by an integer factor, without interpolation.
// For factor 1 the image is returned unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG writes img in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// gifPalette contains all colors which can occur in a rendered frame.
func gifPalette() color.Palette {
	pal := make(color.Palette, 0, len(voronoi.Palette)+2)
	for _, c := range voronoi.Palette {
		pal = append(pal, c)
	}
	return append(pal, voronoi.Unpainted, voronoi.MarkerColor)
}

// WriteGIF writes the frames as an animated GIF which is played once.
// Delay is the time between frames, in units of 1/100 s.
func WriteGIF(w io.Writer, frames []*image.NRGBA, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	pal := gifPalette()
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: -1,
	}
	for i, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), pal)
		draw.Draw(p, p.Bounds(), frame, frame.Bounds().Min, draw.Src)
		anim.Image[i] = p
		anim.Delay[i] = delay
	}
	return gif.EncodeAll(w, anim)
}

// WriteFrames stores the frames as PNG files "frame0000.png",
// "frame0001.png", ... in the directory dir, which is created if needed.
func WriteFrames(dir string, frames []*image.NRGBA) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i, frame := range frames {
		name := filepath.Join(dir, fmt.Sprintf("frame%04d.png", i))
		if err := writePNGFile(name, frame); err != nil {
			return err
		}
	}
	return nil
}

func writePNGFile(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = WritePNG(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
