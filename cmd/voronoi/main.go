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

// Command voronoi renders the Voronoi diagram of a few random sites.
//
// In static mode the finished diagram is written as a PNG or PDF file.
// In video mode the frames of the growing-regions animation are written,
// either as an animated GIF or as a directory of PNG files.
//
// Usage:
//
//	voronoi [flags]
//
// Sites are sampled from [0.1, 0.9]² using the given seed, or read from a
// YAML file given with -sites.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/export"
	"seehuhn.de/go/voronoi/sites"
)

type options struct {
	mode     string
	format   string
	out      string
	width    int
	height   int
	count    int
	seed     uint64
	sitesIn  string
	sitesOut string
	scale    int
	delay    int
	workers  int
	complete bool
	verbose  bool
}

func main() {
	var opt options
	flag.StringVar(&opt.mode, "mode", "static", "render mode: static or video")
	flag.StringVar(&opt.format, "format", "", "output format: png, pdf, gif or frames (default png for static, gif for video)")
	flag.StringVar(&opt.out, "out", "", "output file or directory (default voronoi.<format>)")
	flag.IntVar(&opt.width, "width", voronoi.DefaultSize, "grid width in pixels")
	flag.IntVar(&opt.height, "height", voronoi.DefaultSize, "grid height in pixels")
	flag.IntVar(&opt.count, "n", sites.DefaultCount, "number of random sites")
	flag.Uint64Var(&opt.seed, "seed", 1, "seed for the random sites")
	flag.StringVar(&opt.sitesIn, "sites", "", "read sites from this YAML file")
	flag.StringVar(&opt.sitesOut, "save-sites", "", "write the sites to this YAML file")
	flag.IntVar(&opt.scale, "scale", 1, "enlarge the output by this integer factor")
	flag.IntVar(&opt.delay, "delay", export.DefaultDelay, "GIF frame delay in 1/100 s")
	flag.IntVar(&opt.workers, "workers", 1, "number of goroutines for the pixel scan")
	flag.BoolVar(&opt.complete, "complete", false, "end animations with a fully painted frame")
	flag.BoolVar(&opt.verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	voronoi.SetLogger(logger)

	if err := run(&opt, logger); err != nil {
		logger.Error("voronoi failed", "error", err)
		os.Exit(1)
	}
}

func run(opt *options, logger *slog.Logger) error {
	if opt.format == "" {
		opt.format = "png"
		if opt.mode == "video" {
			opt.format = "gif"
		}
	}
	opt.format = strings.ToLower(opt.format)
	if opt.out == "" {
		opt.out = "voronoi." + opt.format
		if opt.format == "frames" {
			opt.out = "frames"
		}
	}

	siteSet, err := loadSites(opt)
	if err != nil {
		return err
	}
	if opt.sitesOut != "" {
		if err := saveSites(opt.sitesOut, siteSet); err != nil {
			return err
		}
	}

	r := voronoi.NewRenderer(opt.width, opt.height)
	r.Workers = opt.workers
	r.Complete = opt.complete

	switch opt.mode {
	case "static":
		img, err := r.Static(siteSet)
		if err != nil {
			return err
		}
		if err := writeStatic(opt, export.Scale(img, opt.scale)); err != nil {
			return err
		}
	case "video":
		frames, err := r.Animation(siteSet)
		if err != nil {
			return err
		}
		for i, frame := range frames {
			frames[i] = export.Scale(frame, opt.scale)
		}
		if err := writeVideo(opt, frames); err != nil {
			return err
		}
		logger.Info("animation rendered", "frames", len(frames))
	default:
		return fmt.Errorf("unknown mode %q", opt.mode)
	}

	logger.Info("output written", "file", opt.out, "format", opt.format)
	return nil
}

func loadSites(opt *options) ([]vec.Vec2, error) {
	if opt.sitesIn == "" {
		return sites.Generate(sites.NewRand(opt.seed), opt.count, sites.DefaultBounds)
	}
	f, err := os.Open(opt.sitesIn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := sites.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opt.sitesIn, err)
	}
	return res, nil
}

func saveSites(fileName string, siteSet []vec.Vec2) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = sites.Save(f, siteSet)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func writeStatic(opt *options, img *image.NRGBA) error {
	switch opt.format {
	case "png":
		return createAndWrite(opt.out, func(f *os.File) error {
			return export.WritePNG(f, img)
		})
	case "pdf":
		return export.WritePDF(opt.out, img)
	default:
		return fmt.Errorf("format %q not supported in static mode", opt.format)
	}
}

func writeVideo(opt *options, frames []*image.NRGBA) error {
	switch opt.format {
	case "gif":
		return createAndWrite(opt.out, func(f *os.File) error {
			return export.WriteGIF(f, frames, opt.delay)
		})
	case "frames":
		return export.WriteFrames(opt.out, frames)
	default:
		return fmt.Errorf("format %q not supported in video mode", opt.format)
	}
}

func createAndWrite(fileName string, write func(*os.File) error) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Join(err, os.Remove(fileName))
	}
	return nil
}
