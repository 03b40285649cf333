package geometry

import (
	"sort"

	"github.com/pkg/errors"
)

// Collection is a scene: loose points, loose segments and polygons. The
// AllPoints and AllSegments views are recomputed on every call.
type Collection struct {
	points   map[Point]struct{}
	segments map[Segment]struct{}
	polygons []Polygon
}

func NewCollection() *Collection {
	return &Collection{
		points:   make(map[Point]struct{}),
		segments: make(map[Segment]struct{}),
		polygons: make([]Polygon, 0),
	}
}

// Add inserts e into the set matching its kind. Adding a present element is a
// no-op.
func (c *Collection) Add(e Element) error {
	switch v := e.(type) {
	case Point:
		c.points[v] = struct{}{}
	case Segment:
		c.segments[v.Canonical()] = struct{}{}
	case Polygon:
		if c.polygonIndex(v) < 0 {
			c.polygons = append(c.polygons, v)
		}
	default:
		return errors.Errorf("geometry: unsupported element %T", e)
	}

	return nil
}

// Remove deletes e; it returns ErrNotFound when e is not a member.
func (c *Collection) Remove(e Element) error {
	switch v := e.(type) {
	case Point:
		if _, ok := c.points[v]; !ok {
			return errors.Wrapf(ErrNotFound, "point %v", v)
		}
		delete(c.points, v)
	case Segment:
		key := v.Canonical()
		if _, ok := c.segments[key]; !ok {
			return errors.Wrapf(ErrNotFound, "segment %v", v)
		}
		delete(c.segments, key)
	case Polygon:
		i := c.polygonIndex(v)
		if i < 0 {
			return errors.Wrapf(ErrNotFound, "polygon with %d vertices", v.Len())
		}
		c.polygons = append(c.polygons[:i], c.polygons[i+1:]...)
	default:
		return errors.Errorf("geometry: unsupported element %T", e)
	}

	return nil
}

func (c *Collection) Contains(e Element) bool {
	switch v := e.(type) {
	case Point:
		_, ok := c.points[v]
		return ok
	case Segment:
		_, ok := c.segments[v.Canonical()]
		return ok
	case Polygon:
		return c.polygonIndex(v) >= 0
	}

	return false
}

func (c *Collection) polygonIndex(p Polygon) int {
	for i, poly := range c.polygons {
		if poly.Equal(p) {
			return i
		}
	}

	return -1
}

// Len returns the number of loose points, loose segments and polygons.
func (c *Collection) Len() int {
	return len(c.points) + len(c.segments) + len(c.polygons)
}

// Points returns the loose points, sorted.
func (c *Collection) Points() []Point {
	res := make([]Point, 0, len(c.points))
	for p := range c.points {
		res = append(res, p)
	}

	sortPoints(res)
	return res
}

// Segments returns the loose segments, sorted.
func (c *Collection) Segments() []Segment {
	res := make([]Segment, 0, len(c.segments))
	for s := range c.segments {
		res = append(res, s)
	}

	sortSegments(res)
	return res
}

// Polygons returns the polygons in insertion order.
func (c *Collection) Polygons() []Polygon {
	res := make([]Polygon, len(c.polygons))
	copy(res, c.polygons)
	return res
}

// AllPoints returns loose points, segment endpoints and polygon vertices,
// deduplicated and sorted.
func (c *Collection) AllPoints() []Point {
	set := make(map[Point]struct{}, len(c.points))
	for p := range c.points {
		set[p] = struct{}{}
	}

	for s := range c.segments {
		set[s.P1] = struct{}{}
		set[s.P2] = struct{}{}
	}

	for _, poly := range c.polygons {
		for _, p := range poly.points {
			set[p] = struct{}{}
		}
	}

	res := make([]Point, 0, len(set))
	for p := range set {
		res = append(res, p)
	}

	sortPoints(res)
	return res
}

// AllSegments returns loose segments and polygon edges, deduplicated and
// sorted.
func (c *Collection) AllSegments() []Segment {
	set := make(map[Segment]struct{}, len(c.segments))
	for s := range c.segments {
		set[s] = struct{}{}
	}

	for _, poly := range c.polygons {
		for _, edge := range poly.Edges() {
			set[edge] = struct{}{}
		}
	}

	res := make([]Segment, 0, len(set))
	for s := range set {
		res = append(res, s)
	}

	sortSegments(res)
	return res
}

func (c *Collection) Clone() *Collection {
	res := NewCollection()
	for p := range c.points {
		res.points[p] = struct{}{}
	}

	for s := range c.segments {
		res.segments[s] = struct{}{}
	}

	for _, poly := range c.polygons {
		res.polygons = append(res.polygons, Polygon{points: poly.Points()})
	}

	return res
}

// Validate reports the first pair of obstacle segments crossing each other
// other than at a shared endpoint.
func (c *Collection) Validate() error {
	crossings := FindCrossings(c.AllSegments())
	if len(crossings) == 0 {
		return nil
	}

	first := crossings[0]
	return errors.Wrapf(ErrCrossingObstacles, "%v and %v meet at %v (%d crossings)", first.A, first.B, first.At, len(crossings))
}

type byPoint []Point

func (coll byPoint) Len() int           { return len(coll) }
func (coll byPoint) Swap(i, j int)      { coll[i], coll[j] = coll[j], coll[i] }
func (coll byPoint) Less(i, j int) bool { return coll[i].Less(coll[j]) }

type bySegment []Segment

func (coll bySegment) Len() int           { return len(coll) }
func (coll bySegment) Swap(i, j int)      { coll[i], coll[j] = coll[j], coll[i] }
func (coll bySegment) Less(i, j int) bool { return coll[i].Compare(coll[j]) < 0 }

func sortPoints(points []Point) {
	sort.Sort(byPoint(points))
}

func sortSegments(segments []Segment) {
	sort.Sort(bySegment(segments))
}
