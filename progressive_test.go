package voronoi

import (
	"bytes"
	"errors"
	"image"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/voronoi/testcases"
)

func TestAnimationFrameCount(t *testing.T) {
	cases := []struct {
		width, height, step int
		want                int
	}{
		{10, 10, 2, 4}, // radius 0, 2, 4, 6 < 7.07
		{10, 10, 1, 4}, // only even radii are captured
		{10, 10, 3, 2}, // radius 0 and 6
		{40, 30, 2, 13},
		{1, 1, 2, 1},
	}
	sites := []vec.Vec2{{X: 0.3, Y: 0.6}, {X: 0.7, Y: 0.2}}
	for _, tc := range cases {
		r := NewRenderer(tc.width, tc.height)
		r.Step = tc.step
		frames, err := r.Animation(sites)
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) != tc.want {
			t.Errorf("%dx%d, step %d: got %d frames, want %d",
				tc.width, tc.height, tc.step, len(frames), tc.want)
		}
	}
}

func TestAnimationSingleSite(t *testing.T) {
	sites := []vec.Vec2{{X: 0.5, Y: 0.5}}
	frames, err := RenderAnimation(sites, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	marker := map[image.Point]bool{
		{2, 2}: true, {1, 2}: true, {3, 2}: true, {2, 1}: true, {2, 3}: true,
	}

	// At radius 0 only the pixel under the site is reached, and that one
	// is covered by the marker.
	for y := range 4 {
		for x := range 4 {
			want := Unpainted
			if marker[image.Point{x, y}] {
				want = MarkerColor
			}
			if got := frames[0].NRGBAAt(x, y); got != want {
				t.Errorf("frame 0, pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}

	// At radius 2 pixels up to distance 0.5 are painted.  The remaining
	// ones are more than 0.5 away from the site.
	unpainted := map[image.Point]bool{
		{0, 0}: true, {1, 0}: true, {3, 0}: true, {0, 1}: true, {0, 3}: true,
	}
	for y := range 4 {
		for x := range 4 {
			p := image.Point{x, y}
			want := Palette[0]
			switch {
			case marker[p]:
				want = MarkerColor
			case unpainted[p]:
				want = Unpainted
			}
			if got := frames[1].NRGBAAt(x, y); got != want {
				t.Errorf("frame 1, pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestAnimationComplete(t *testing.T) {
	sites := []vec.Vec2{{X: 0.5, Y: 0.5}}
	r := NewRenderer(4, 4)
	r.Complete = true
	frames, err := r.Animation(sites)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	static, err := RenderStatic(sites, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(frames[2].Pix, static.Pix) {
		t.Error("final frame differs from the static diagram")
	}

	// Nothing is added if the regions already cover the grid.
	sites = []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}}
	r = NewRenderer(20, 20)
	plain, err := r.Animation(sites)
	if err != nil {
		t.Fatal(err)
	}
	r.Complete = true
	completed, err := r.Animation(sites)
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(completed) {
		t.Errorf("got %d frames, want %d", len(completed), len(plain))
	}
}

func TestAnimationBoundarySlack(t *testing.T) {
	// A single site in one corner cannot reach the opposite corner before
	// the radius limit.
	sites := []vec.Vec2{{X: 0.1, Y: 0.1}}
	frames, err := RenderAnimation(sites, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	last := frames[len(frames)-1]
	if got := last.NRGBAAt(19, 19); got != Unpainted {
		t.Errorf("far corner: got %v, want %v", got, Unpainted)
	}
	if got := last.NRGBAAt(5, 5); got != Palette[0] {
		t.Errorf("near pixel: got %v, want %v", got, Palette[0])
	}
}

func TestAnimationMonotone(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				frames, err := RenderAnimation(tc.Sites, tc.Width, tc.Height)
				if err != nil {
					t.Fatal(err)
				}
				mask := markerMask(tc.Sites, tc.Width, tc.Height)
				for k := 1; k < len(frames); k++ {
					prev, cur := frames[k-1], frames[k]
					for i, isMarker := range mask {
						if isMarker {
							continue
						}
						x, y := i%tc.Width, i/tc.Width
						c := prev.NRGBAAt(x, y)
						if c != Unpainted && cur.NRGBAAt(x, y) != c {
							t.Fatalf("frame %d, pixel (%d, %d): %v changed to %v",
								k, x, y, c, cur.NRGBAAt(x, y))
						}
					}
				}
			})
		}
	}
}

func TestAnimationConvergesToStatic(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r := NewRenderer(tc.Width, tc.Height)
				r.Complete = true
				frames, err := r.Animation(tc.Sites)
				if err != nil {
					t.Fatal(err)
				}
				static, err := r.Static(tc.Sites)
				if err != nil {
					t.Fatal(err)
				}
				last := frames[len(frames)-1]

				// Squared and true distances can round differently for
				// sites which are equally far from a pixel.
				sq := r.classify(tc.Sites, squaredDist)
				eu := r.classify(tc.Sites, euclideanDist)

				mask := markerMask(tc.Sites, tc.Width, tc.Height)
				for i, isMarker := range mask {
					if isMarker {
						continue
					}
					x, y := i%tc.Width, i/tc.Width
					if last.NRGBAAt(x, y) == static.NRGBAAt(x, y) {
						continue
					}
					fx := float64(x) / float64(tc.Width)
					fy := float64(y) / float64(tc.Height)
					d1 := dist2(tc.Sites[sq.site[i]], fx, fy)
					d2 := dist2(tc.Sites[eu.site[i]], fx, fy)
					if math.Abs(d1-d2) > 1e-12 {
						t.Errorf("pixel (%d, %d): animation %v, static %v",
							x, y, last.NRGBAAt(x, y), static.NRGBAAt(x, y))
					}
				}
			})
		}
	}
}

func TestFramesIterator(t *testing.T) {
	sites := []vec.Vec2{{X: 0.25, Y: 0.75}, {X: 0.6, Y: 0.3}}
	r := NewRenderer(16, 16)
	frames, err := r.Frames(sites)
	if err != nil {
		t.Fatal(err)
	}

	var first, second []*image.NRGBA
	for f := range frames {
		first = append(first, f)
	}
	for f := range frames {
		second = append(second, f)
	}
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("got %d and %d frames", len(first), len(second))
	}
	for i := range first {
		if first[i] == second[i] {
			t.Fatalf("frame %d is shared between iterations", i)
		}
		if !bytes.Equal(first[i].Pix, second[i].Pix) {
			t.Errorf("frame %d differs between iterations", i)
		}
	}

	n := 0
	for range frames {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("stopped after %d frames, want 2", n)
	}
}

func TestAnimationErrors(t *testing.T) {
	sites := []vec.Vec2{{X: 0.5, Y: 0.5}}

	if _, err := RenderAnimation(nil, 8, 8); !errors.Is(err, ErrNoSites) {
		t.Errorf("no sites: got %v", err)
	}
	if _, err := RenderAnimation(sites, 8, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero height: got %v", err)
	}

	r := NewRenderer(8, 8)
	r.Step = 0
	if _, err := r.Animation(sites); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("zero step: got %v", err)
	}
	if _, err := r.Static(sites); err != nil {
		t.Errorf("static diagrams do not use the step: %v", err)
	}
}

// markerMask reports, in row-major order, which pixels are covered by site
// markers.
func markerMask(sites []vec.Vec2, width, height int) []bool {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	DrawMarkers(img, sites)
	mask := make([]bool, width*height)
	for i := range mask {
		mask[i] = img.NRGBAAt(i%width, i/width) == MarkerColor
	}
	return mask
}
