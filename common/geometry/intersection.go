package geometry

// Restriction constrains where along a line an intersection has to fall.
type Restriction int

const (
	// RestrictLine accepts any parameter.
	RestrictLine Restriction = iota
	// RestrictSegment accepts 0 <= t <= 1.
	RestrictSegment
	// RestrictRay accepts t >= 0 (from the first point through the second).
	RestrictRay
	// RestrictRayInverse accepts t <= 1 (from the second point through the first).
	RestrictRayInverse
)

func (r Restriction) String() string {
	switch r {
	case RestrictLine:
		return "line"
	case RestrictSegment:
		return "segment"
	case RestrictRay:
		return "ray"
	case RestrictRayInverse:
		return "ray-inverse"
	}

	return "unknown"
}

func (r Restriction) accepts(t float64) bool {
	switch r {
	case RestrictSegment:
		return t >= 0 && t <= 1
	case RestrictRay:
		return t >= 0
	case RestrictRayInverse:
		return t <= 1
	}

	return true
}

// parametricIntersection solves p1 + t1(p2-p1) = p3 + t2(p4-p3). ok is false
// when the lines are parallel or coincident.
func parametricIntersection(p1, p2, p3, p4 Point) (t1, t2 float64, ok bool) {
	r := p2.Sub(p1)
	s := p4.Sub(p3)
	qp := p3.Sub(p1)

	rxs := r.X*s.Y - r.Y*s.X
	if rxs == 0 {
		return 0, 0, false
	}

	t1 = (qp.X*s.Y - qp.Y*s.X) / rxs
	t2 = (qp.X*r.Y - qp.Y*r.X) / rxs

	return t1, t2, true
}

// Intersection returns the intersection of the line through p1, p2 with the
// line through p3, p4, each restricted by its Restriction. Parallel and
// coincident lines never intersect.
func Intersection(p1, p2, p3, p4 Point, restriction1, restriction2 Restriction) (Point, bool) {
	t1, t2, ok := parametricIntersection(p1, p2, p3, p4)
	if !ok {
		return Point{}, false
	}

	if !restriction1.accepts(t1) || !restriction2.accepts(t2) {
		return Point{}, false
	}

	return Point{
		p1.X + t1*(p2.X-p1.X),
		p1.Y + t1*(p2.Y-p1.Y),
	}, true
}

// SegmentsIntersect is Intersection with both lines restricted to segments.
func SegmentsIntersect(a, b Segment) (Point, bool) {
	return Intersection(a.P1, a.P2, b.P1, b.P2, RestrictSegment, RestrictSegment)
}
