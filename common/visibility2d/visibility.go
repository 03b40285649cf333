package visibility2d

import (
	"sort"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/pkg/errors"
)

// Sweep walks the vertices visible from one origin in increasing angle
// around it. It is consumed once, the same way as a bufio.Scanner:
//
//	sweep, err := NewSweep(origin, points, incidence)
//	for sweep.Next() {
//		visible = append(visible, sweep.Point())
//	}
//	if err := sweep.Err(); err != nil { ... }
type Sweep struct {
	origin     geometry.Point
	incidence  *Incidence
	candidates []candidate
	status     *Status

	// obstacles having the origin strictly inside them; never in the status
	through []geometry.Segment

	pos     int
	prev    *geometry.Point
	touched bool

	current geometry.Point
	err     error
}

// NewSweep prepares the sweep around origin over points. Obstacles are taken
// from incidence, which is only read.
func NewSweep(origin geometry.Point, points []geometry.Point, incidence *Incidence) (*Sweep, error) {
	if incidence == nil {
		incidence = NewIncidence(nil)
	}

	s := &Sweep{
		origin:     origin,
		incidence:  incidence,
		candidates: make([]candidate, 0, len(points)),
		through:    make([]geometry.Segment, 0),
	}

	seen := make(map[geometry.Point]struct{}, len(points))
	for _, p := range points {
		if p == origin {
			continue
		}

		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		s.candidates = append(s.candidates, candidate{
			point:    p,
			angle:    geometry.AngleToAxis(origin, p),
			distance: geometry.Distance(origin, p),
		})
	}

	sort.Sort(byAngle(s.candidates))

	if err := s.seed(); err != nil {
		return nil, err
	}

	return s, nil
}

// seed fills the status with the obstacles crossing the initial ray, which
// points along +x.
func (s *Sweep) seed() error {
	axis := geometry.MakePoint(s.origin.X+1, s.origin.Y)
	s.status = NewStatus(geometry.MakeRay(s.origin, axis))

	for _, seg := range s.incidence.Segments() {
		if seg.Has(s.origin) {
			continue
		}

		if passesThrough(seg, s.origin) {
			s.through = append(s.through, seg)
			continue
		}

		if !s.crossesInitialRay(seg, axis) {
			continue
		}

		if err := s.status.Insert(seg); err != nil {
			return errors.Wrapf(err, "seeding sweep around %v", s.origin)
		}
	}

	return nil
}

// crossesInitialRay holds for a segment with one endpoint strictly below the
// ray and the other either on the ray or above it, meeting the ray in front of
// the origin. Those segments are swept out before they are swept in.
func (s *Sweep) crossesInitialRay(seg geometry.Segment, axis geometry.Point) bool {
	o1 := geometry.Orientation(s.origin, axis, seg.P1)
	o2 := geometry.Orientation(s.origin, axis, seg.P2)

	below, other := seg.P1, seg.P2
	oOther := o2
	switch {
	case o1 < 0 && o2 >= 0:
	case o2 < 0 && o1 >= 0:
		below, other = seg.P2, seg.P1
		oOther = o1
	default:
		return false
	}

	if oOther == 0 {
		return other.X > s.origin.X
	}

	at, ok := geometry.Intersection(s.origin, axis, below, other, geometry.RestrictRay, geometry.RestrictSegment)
	return ok && at != s.origin
}

// Next advances to the next visible vertex. It returns false once the sweep
// is over or failed; Err tells which.
func (s *Sweep) Next() bool {
	if s.err != nil {
		return false
	}

	for s.pos < len(s.candidates) {
		p := s.candidates[s.pos].point
		s.pos++

		visible, err := s.step(p)
		if err != nil {
			s.err = err
			return false
		}

		if visible {
			s.current = p
			return true
		}
	}

	return false
}

func (s *Sweep) step(p geometry.Point) (bool, error) {
	if s.prev == nil || !sameDirection(s.origin, *s.prev, p) {
		s.touched = false
	}
	s.prev = &p

	s.status.SetRay(geometry.MakeRay(s.origin, p))

	incident := s.incidence.At(p)

	for _, seg := range incident {
		if seg.Has(s.origin) || passesThrough(seg, s.origin) {
			continue
		}

		if geometry.Orientation(s.origin, p, seg.Other(p)) < 0 {
			if err := s.status.Remove(seg); err != nil {
				return false, errors.Wrapf(err, "sweeping %v around %v", p, s.origin)
			}
		}
	}

	visible := !s.touched && s.clearOfThrough(p) && s.status.NothingCloser(p)

	for _, seg := range incident {
		if seg.Has(s.origin) || passesThrough(seg, s.origin) {
			continue
		}

		o := geometry.Orientation(s.origin, p, seg.Other(p))
		if o > 0 {
			if err := s.status.Insert(seg); err != nil {
				return false, errors.Wrapf(err, "sweeping %v around %v", p, s.origin)
			}
		}

		if o != 0 {
			// whatever lies further in this direction goes through p and
			// grazes this obstacle
			s.touched = true
		}
	}

	return visible, nil
}

// clearOfThrough checks p against the obstacles running through the origin:
// only their own endpoints and points along them are not hidden.
func (s *Sweep) clearOfThrough(p geometry.Point) bool {
	for _, seg := range s.through {
		if seg.Has(p) {
			continue
		}

		if geometry.Orientation(seg.P1, seg.P2, p) == 0 {
			continue
		}

		return false
	}

	return true
}

// Point returns the vertex found by the last call to Next.
func (s *Sweep) Point() geometry.Point {
	return s.current
}

func (s *Sweep) Err() error {
	return s.err
}

// VisibleVertices runs a whole sweep and collects its output.
func VisibleVertices(origin geometry.Point, points []geometry.Point, incidence *Incidence) ([]geometry.Point, error) {
	sweep, err := NewSweep(origin, points, incidence)
	if err != nil {
		return nil, err
	}

	res := make([]geometry.Point, 0)
	for sweep.Next() {
		res = append(res, sweep.Point())
	}

	if err := sweep.Err(); err != nil {
		return nil, err
	}

	return res, nil
}
