package geometry

import (
	"fmt"

	"github.com/pkg/errors"
)

// Element is one of Point, Segment or Polygon.
type Element interface {
	isElement()
}

type Point struct {
	X, Y float64
}

func MakePoint(x, y float64) Point {
	return Point{x, y}
}

func (Point) isElement() {}

// Compare orders points lexicographically by (X, Y).
func (p Point) Compare(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}

	return 0
}

func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is an unordered pair of points. Segments built with MakeSegment are
// canonical (P1 <= P2), so == and map keys ignore endpoint order.
type Segment struct {
	P1, P2 Point
}

func MakeSegment(a, b Point) Segment {
	if b.Less(a) {
		a, b = b, a
	}

	return Segment{a, b}
}

func (Segment) isElement() {}

// Canonical returns s with its endpoints in Point order.
func (s Segment) Canonical() Segment {
	return MakeSegment(s.P1, s.P2)
}

func (s Segment) IsDegenerate() bool {
	return s.P1 == s.P2
}

// Has reports whether p is one of the endpoints of s.
func (s Segment) Has(p Point) bool {
	return s.P1 == p || s.P2 == p
}

// Other returns the endpoint of s that is not p. p is expected to be an endpoint.
func (s Segment) Other(p Point) Point {
	if s.P1 == p {
		return s.P2
	}

	return s.P1
}

func (s Segment) Length() float64 {
	return Distance(s.P1, s.P2)
}

func (s Segment) Compare(o Segment) int {
	if c := s.P1.Compare(o.P1); c != 0 {
		return c
	}

	return s.P2.Compare(o.P2)
}

func (s Segment) String() string {
	return fmt.Sprintf("[%v %v]", s.P1, s.P2)
}

// Ray is a directed half-line from Origin through Target.
type Ray struct {
	Origin Point
	Target Point
}

func MakeRay(origin, target Point) Ray {
	return Ray{origin, target}
}

func (r Ray) Direction() Point {
	return r.Target.Sub(r.Origin)
}

func (r Ray) IsDegenerate() bool {
	return r.Origin == r.Target
}

// Polygon is a cyclic sequence of at least three vertices.
type Polygon struct {
	points []Point
}

func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Wrapf(ErrDegenerate, "polygon needs at least 3 vertices, got %d", len(points))
	}

	cp := make([]Point, len(points))
	copy(cp, points)

	return Polygon{points: cp}, nil
}

func (Polygon) isElement() {}

func (p Polygon) Len() int {
	return len(p.points)
}

// Points returns a copy of the vertices in order.
func (p Polygon) Points() []Point {
	res := make([]Point, len(p.points))
	copy(res, p.points)
	return res
}

// Edges returns the polygon sides; edge i joins vertex i-1 and vertex i, so
// edge 0 closes the polygon.
func (p Polygon) Edges() []Segment {
	n := len(p.points)
	res := make([]Segment, n)
	for i := 0; i < n; i++ {
		res[i] = MakeSegment(p.points[(i+n-1)%n], p.points[i])
	}

	return res
}

func (p Polygon) Equal(o Polygon) bool {
	if len(p.points) != len(o.points) {
		return false
	}

	for i := range p.points {
		if p.points[i] != o.points[i] {
			return false
		}
	}

	return true
}
