package visibility2d

import (
	"math"

	"github.com/bytearena/visgraph/common/geometry"
)

// project returns where seg meets the current ray and how far that is from
// the ray origin. An endpoint lying exactly on the ray is returned as is, so
// segments sharing it tie exactly.
func (s *Status) project(seg geometry.Segment) (float64, geometry.Point, bool) {
	origin := s.ray.Origin

	o1 := geometry.Orientation(origin, s.ray.Target, seg.P1)
	o2 := geometry.Orientation(origin, s.ray.Target, seg.P2)

	var at geometry.Point
	switch {
	case o1 == 0 && o2 == 0:
		return 0, at, false
	case o1 == 0:
		at = seg.P1
	case o2 == 0:
		at = seg.P2
	case (o1 < 0) == (o2 < 0):
		return 0, at, false
	default:
		f := o1 / (o1 - o2)
		at = geometry.MakePoint(
			seg.P1.X+f*(seg.P2.X-seg.P1.X),
			seg.P1.Y+f*(seg.P2.Y-seg.P1.Y),
		)
	}

	dir := s.ray.Direction()
	d := at.Sub(origin)
	if d.X*dir.X+d.Y*dir.Y <= 0 {
		return 0, at, false
	}

	return geometry.Distance(origin, at), at, true
}

func (s *Status) distance(seg geometry.Segment) float64 {
	d, _, ok := s.project(seg)
	if !ok {
		return math.Inf(1)
	}

	return d
}

// departure is the angle at the ray crossing between the way back to the
// origin and the rest of the segment. Of two segments leaving the same point,
// the one with the smaller angle stays nearer to the origin.
func (s *Status) departure(seg geometry.Segment, at geometry.Point) float64 {
	var far geometry.Point
	switch {
	case at == seg.P1:
		far = seg.P2
	case at == seg.P2:
		far = seg.P1
	case geometry.Orientation(s.ray.Origin, s.ray.Target, seg.P1) > 0:
		far = seg.P1
	default:
		far = seg.P2
	}

	angle, err := geometry.AngleBetween(s.ray.Origin, at, far)
	if err != nil {
		// members are checked on insertion; at is never the origin nor far
		return 0
	}

	return angle
}

// compare orders status entries along the current ray. A point and a
// segment at the same distance put the segment first whichever side they are
// on: a point lying on an obstacle is hidden by it.
func (s *Status) compare(a, b entry) int {
	switch {
	case a.kind == pointEntry && b.kind == pointEntry:
		return compareFloat(
			geometry.Distance(s.ray.Origin, a.point),
			geometry.Distance(s.ray.Origin, b.point),
		)
	case a.kind == pointEntry:
		return -s.compareSegmentPoint(b.segment, a.point)
	case b.kind == pointEntry:
		return s.compareSegmentPoint(a.segment, b.point)
	}

	return s.compareSegments(a.segment, b.segment)
}

func (s *Status) compareSegmentPoint(seg geometry.Segment, p geometry.Point) int {
	if c := compareFloat(s.distance(seg), geometry.Distance(s.ray.Origin, p)); c != 0 {
		return c
	}

	return -1
}

func (s *Status) compareSegments(a, b geometry.Segment) int {
	if a == b {
		return 0
	}

	da, atA, okA := s.project(a)
	db, atB, okB := s.project(b)

	switch {
	case !okA && !okB:
		return a.Compare(b)
	case !okA:
		return 1
	case !okB:
		return -1
	}

	if c := compareFloat(da, db); c != 0 {
		return c
	}

	if c := compareFloat(s.departure(a, atA), s.departure(b, atB)); c != 0 {
		return c
	}

	return a.Compare(b)
}
