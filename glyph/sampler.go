// Package glyph converts a word into outline sample points.
//
// Glyph contours are loaded as vector segments, curves are flattened into
// closed polylines, and each polyline is walked emitting a point every
// spacing pixels of arc length.
package glyph

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// flattenStep is the approximate chord length, in pixels, used to flatten curves.
const flattenStep = 1.0

// maxCurveSteps caps the chords per curve segment.
const maxCurveSteps = 64

// Sample is the result of sampling a word.
// Coordinates are in glyph space: origin at the left of the baseline, y down.
type Sample struct {
	Points []r2.Vec
	Bounds r2.Box
}

// Centered returns the points translated so the bounds sit centered on a width x height canvas.
func (s Sample) Centered(width, height float64) []r2.Vec {
	off := s.Offset(width, height)
	out := make([]r2.Vec, len(s.Points))
	for i, p := range s.Points {
		out[i] = r2.Add(p, off)
	}
	return out
}

// Offset returns the translation that centers the bounds on a width x height canvas.
func (s Sample) Offset(width, height float64) r2.Vec {
	w := s.Bounds.Max.X - s.Bounds.Min.X
	h := s.Bounds.Max.Y - s.Bounds.Min.Y
	return r2.Vec{
		X: (width-w)/2 - s.Bounds.Min.X,
		Y: (height-h)/2 - s.Bounds.Min.Y,
	}
}

// Sampler samples words with a single font. It is not safe for concurrent use.
type Sampler struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// NewSampler creates a sampler using the embedded Go Bold font.
func NewSampler() (*Sampler, error) {
	return newSampler(gobold.TTF)
}

// NewSamplerFromFile creates a sampler from a TTF/OTF file.
// An empty path falls back to the embedded font.
func NewSamplerFromFile(path string) (*Sampler, error) {
	if path == "" {
		return NewSampler()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	return newSampler(data)
}

func newSampler(data []byte) (*Sampler, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Sampler{font: f}, nil
}

// Sample returns outline points for word at the given pixel size, spaced
// spacing pixels apart along each contour (spacing <= 0 means 1).
// An empty or whitespace-only word yields no points.
func (s *Sampler) Sample(word string, size, spacing float64) (Sample, error) {
	if word == "" {
		return Sample{}, nil
	}
	if size <= 0 {
		return Sample{}, fmt.Errorf("font size must be positive, got %v", size)
	}
	if spacing <= 0 {
		spacing = 1
	}

	ppem := fixed.Int26_6(math.Round(size * 64))

	var (
		points []r2.Vec
		box    r2.Box
		inked  bool
		pen    fixed.Int26_6
		prev   sfnt.GlyphIndex
	)
	for i, r := range word {
		idx, err := s.font.GlyphIndex(&s.buf, r)
		if err != nil {
			return Sample{}, fmt.Errorf("glyph index for %q: %w", r, err)
		}
		if i > 0 {
			// Fonts without kerning report ErrNotFound
			if k, err := s.font.Kern(&s.buf, prev, idx, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}

		segs, err := s.font.LoadGlyph(&s.buf, idx, ppem, nil)
		if err != nil {
			return Sample{}, fmt.Errorf("loading glyph %q: %w", r, err)
		}
		for _, c := range contours(segs, fixedToFloat(pen)) {
			for _, v := range c {
				if !inked {
					box = r2.Box{Min: v, Max: v}
					inked = true
				}
				box.Min.X = math.Min(box.Min.X, v.X)
				box.Min.Y = math.Min(box.Min.Y, v.Y)
				box.Max.X = math.Max(box.Max.X, v.X)
				box.Max.Y = math.Max(box.Max.Y, v.Y)
			}
			points = append(points, resample(c, spacing)...)
		}

		adv, err := s.font.GlyphAdvance(&s.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return Sample{}, fmt.Errorf("advance for %q: %w", r, err)
		}
		pen += adv
		prev = idx
	}

	if !inked {
		return Sample{}, nil
	}
	return Sample{Points: points, Bounds: box}, nil
}

// contours flattens glyph segments into closed polylines shifted right by dx.
func contours(segs []sfnt.Segment, dx float64) [][]r2.Vec {
	pt := func(p fixed.Point26_6) r2.Vec {
		return r2.Vec{X: fixedToFloat(p.X) + dx, Y: fixedToFloat(p.Y)}
	}

	var out [][]r2.Vec
	var cur []r2.Vec
	closeContour := func() {
		if len(cur) > 1 && cur[0] != cur[len(cur)-1] {
			cur = append(cur, cur[0])
		}
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			cur = append(cur, pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			cur = append(cur, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cur = appendQuad(cur, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			cur = appendCube(cur, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	closeContour()
	return out
}

func appendQuad(path []r2.Vec, c, end r2.Vec) []r2.Vec {
	start := lastOr(path, c)
	n := curveSteps(dist(start, c) + dist(c, end))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p := r2.Add(r2.Add(r2.Scale(u*u, start), r2.Scale(2*u*t, c)), r2.Scale(t*t, end))
		path = append(path, p)
	}
	return path
}

func appendCube(path []r2.Vec, c1, c2, end r2.Vec) []r2.Vec {
	start := lastOr(path, c1)
	n := curveSteps(dist(start, c1) + dist(c1, c2) + dist(c2, end))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p := r2.Add(
			r2.Add(r2.Scale(u*u*u, start), r2.Scale(3*u*u*t, c1)),
			r2.Add(r2.Scale(3*u*t*t, c2), r2.Scale(t*t*t, end)),
		)
		path = append(path, p)
	}
	return path
}

// curveSteps picks a chord count from the control polygon length.
func curveSteps(length float64) int {
	n := int(math.Ceil(length / flattenStep))
	return max(1, min(n, maxCurveSteps))
}

// resample walks a closed polyline and emits a point every spacing pixels of
// arc length, starting at its first vertex. A contour shorter than spacing
// still yields its first vertex.
func resample(path []r2.Vec, spacing float64) []r2.Vec {
	if len(path) == 0 {
		return nil
	}

	out := []r2.Vec{path[0]}
	next := spacing
	walked := 0.0
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		seg := dist(a, b)
		for seg > 0 && next <= walked+seg {
			t := (next - walked) / seg
			out = append(out, r2.Add(a, r2.Scale(t, r2.Sub(b, a))))
			next += spacing
		}
		walked += seg
	}

	// The walk ends where it started
	if len(out) > 1 && dist(out[len(out)-1], out[0]) < spacing/2 {
		out = out[:len(out)-1]
	}
	return out
}

func lastOr(path []r2.Vec, fallback r2.Vec) r2.Vec {
	if len(path) == 0 {
		return fallback
	}
	return path[len(path)-1]
}

func dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
