package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

var (
	Background   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	PolygonFill  = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	ObstacleLine = color.RGBA{0x33, 0x33, 0x33, 0xff}
	EdgeLine     = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	VertexDot    = color.RGBA{0xd6, 0x27, 0x28, 0xff}
)

type Options struct {
	Size      int
	Margin    float64
	LineWidth float64
	DotRadius float64
}

func DefaultOptions(size int) Options {
	return Options{
		Size:      size,
		Margin:    math.Max(4, float64(size)/32),
		LineWidth: 1.5,
		DotRadius: 2.5,
	}
}

// transform maps scene coordinates into the image, y pointing up.
type transform struct {
	m mgl64.Mat3
}

func fit(points []geometry.Point, opts Options) transform {
	size := float64(opts.Size)

	if len(points) == 0 {
		return transform{mgl64.Ident3()}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	scale := 1.0
	if extent := math.Max(maxX-minX, maxY-minY); extent > 0 {
		scale = (size - 2*opts.Margin) / extent
	}

	m := mgl64.Translate2D(opts.Margin, size-opts.Margin).
		Mul3(mgl64.Scale2D(scale, -scale)).
		Mul3(mgl64.Translate2D(-minX, -minY))

	return transform{m}
}

func (t transform) apply(p geometry.Point) (float32, float32) {
	v := t.m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return float32(v.X()), float32(v.Y())
}

// Image draws the obstacles of scene and the edges of graph. graph may be
// nil. Neither collection is modified.
func Image(scene, graph *geometry.Collection, opts Options) (*image.RGBA, error) {
	if opts.Size <= 0 {
		return nil, errors.Errorf("render: invalid image size %d", opts.Size)
	}

	points := scene.AllPoints()
	if graph != nil {
		points = append(points, graph.AllPoints()...)
	}

	t := fit(points, opts)

	dst := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(opts.Size, opts.Size)

	for _, poly := range scene.Polygons() {
		for i, p := range poly.Points() {
			x, y := t.apply(p)
			if i == 0 {
				r.MoveTo(x, y)
			} else {
				r.LineTo(x, y)
			}
		}
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(PolygonFill), image.Point{})

	if graph != nil {
		r.Reset(opts.Size, opts.Size)
		for _, s := range graph.AllSegments() {
			line(r, t, s, opts.LineWidth)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(EdgeLine), image.Point{})
	}

	r.Reset(opts.Size, opts.Size)
	for _, s := range scene.AllSegments() {
		line(r, t, s, opts.LineWidth*1.5)
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(ObstacleLine), image.Point{})

	r.Reset(opts.Size, opts.Size)
	for _, p := range points {
		dot(r, t, p, opts.DotRadius)
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(VertexDot), image.Point{})

	return dst, nil
}

// PNG encodes Image as a PNG into w.
func PNG(w io.Writer, scene, graph *geometry.Collection, opts Options) error {
	img, err := Image(scene, graph, opts)
	if err != nil {
		return err
	}

	return errors.Wrap(png.Encode(w, img), "could not encode png")
}

// line adds s as a quad of the given width. Every quad winds the same way so
// overlapping lines do not cancel out.
func line(r *vector.Rasterizer, t transform, s geometry.Segment, width float64) {
	if s.IsDegenerate() {
		return
	}

	x1, y1 := t.apply(s.P1)
	x2, y2 := t.apply(s.P2)

	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	half := float32(width / 2)
	nx, ny := -dy/length*half, dx/length*half

	r.MoveTo(x1+nx, y1+ny)
	r.LineTo(x2+nx, y2+ny)
	r.LineTo(x2-nx, y2-ny)
	r.LineTo(x1-nx, y1-ny)
	r.ClosePath()
}

func dot(r *vector.Rasterizer, t transform, p geometry.Point, radius float64) {
	x, y := t.apply(p)
	rad := float32(radius)

	const steps = 12
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		px := x + rad*float32(math.Cos(a))
		py := y + rad*float32(math.Sin(a))
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	r.ClosePath()
}
