// Command splinedemo fits curves through a set of waypoints with all three
// algorithms and renders the result to a PNG for visual comparison.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/spline"
)

const flattenTolerance = 0.25

func main() {
	var (
		width  = flag.Int("width", 900, "image width")
		height = flag.Int("height", 700, "image height")
		output = flag.String("output", "splines.png", "output file")
	)
	flag.Parse()

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	waypoints := []spline.Point{
		{X: 60, Y: 160}, {X: 220, Y: 60}, {X: 420, Y: 180},
		{X: 600, Y: 70}, {X: 840, Y: 150},
	}

	natural, err := spline.Natural(waypoints)
	if err != nil {
		log.Fatalf("natural spline: %v", err)
	}
	drawStroke(img, natural, color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff})

	hobby, err := spline.Hobby(shifted(waypoints, 0, 160))
	if err != nil {
		log.Fatalf("hobby curve: %v", err)
	}
	drawStroke(img, hobby, color.RGBA{R: 0x30, G: 0x80, B: 0xd0, A: 0xff})

	catmull := spline.CatmullRom(shifted(waypoints, 0, 320))
	drawStroke(img, catmull, color.RGBA{R: 0x30, G: 0xa0, B: 0x50, A: 0xff})

	// A closed Hobby loop, filled through the PathBuilder contract.
	loop := []spline.Point{
		{X: 450, Y: 540}, {X: 560, Y: 590}, {X: 520, Y: 670},
		{X: 380, Y: 670}, {X: 340, Y: 590},
	}
	closed, err := spline.Hobby(loop, spline.Closed())
	if err != nil {
		log.Fatalf("closed hobby curve: %v", err)
	}
	fp := newFillPath(img.Bounds().Dx(), img.Bounds().Dy())
	spline.EmitSegments(fp, closed, true)
	fp.fill(img, color.RGBA{R: 0xf0, G: 0xc0, B: 0x40, A: 0xff})

	for _, curve := range [][]spline.Point{waypoints, shifted(waypoints, 0, 160), shifted(waypoints, 0, 320), loop} {
		drawDots(img, curve, color.RGBA{A: 0xff})
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode png: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, *width, *height)
}

// shifted returns a copy of the points translated by (dx, dy).
func shifted(points []spline.Point, dx, dy float64) []spline.Point {
	out := make([]spline.Point, len(points))
	for i, p := range points {
		out[i] = spline.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// fillPath adapts a vector.Rasterizer to spline.PathBuilder, flattening the
// cubic segments into rasterizer line verbs.
type fillPath struct {
	z       *vector.Rasterizer
	current spline.Point
}

func newFillPath(w, h int) *fillPath {
	return &fillPath{z: vector.NewRasterizer(w, h)}
}

func (f *fillPath) MoveTo(x, y float64) {
	f.z.MoveTo(float32(x), float32(y))
	f.current = spline.Point{X: x, Y: y}
}

func (f *fillPath) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	seg := spline.Segment{
		P0:  f.current,
		CP1: spline.Point{X: c1x, Y: c1y},
		CP2: spline.Point{X: c2x, Y: c2y},
		P1:  spline.Point{X: x, Y: y},
	}
	for _, p := range seg.Flatten(nil, flattenTolerance) {
		f.z.LineTo(float32(p.X), float32(p.Y))
	}
	f.current = seg.P1
}

func (f *fillPath) Close() {
	f.z.ClosePath()
}

func (f *fillPath) fill(dst *image.RGBA, c color.Color) {
	f.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// drawStroke flattens a fitted curve and strokes it as a chain of quads.
func drawStroke(dst *image.RGBA, segs []spline.Segment, c color.Color) {
	if len(segs) == 0 {
		return
	}
	pts := []spline.Point{segs[0].P0}
	for _, s := range segs {
		pts = s.Flatten(pts, flattenTolerance)
	}

	const width = 3.0
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		n := q.Sub(p).Normalize().Perp().Mul(width / 2)
		z.MoveTo(float32(p.X+n.X), float32(p.Y+n.Y))
		z.LineTo(float32(q.X+n.X), float32(q.Y+n.Y))
		z.LineTo(float32(q.X-n.X), float32(q.Y-n.Y))
		z.LineTo(float32(p.X-n.X), float32(p.Y-n.Y))
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// drawDots marks the waypoints themselves.
func drawDots(dst *image.RGBA, points []spline.Point, c color.Color) {
	const r = 3.5
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	for _, p := range points {
		z.MoveTo(float32(p.X-r), float32(p.Y-r))
		z.LineTo(float32(p.X+r), float32(p.Y-r))
		z.LineTo(float32(p.X+r), float32(p.Y+r))
		z.LineTo(float32(p.X-r), float32(p.Y+r))
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
