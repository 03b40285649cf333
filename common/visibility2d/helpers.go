package visibility2d

import (
	"github.com/bytearena/visgraph/common/geometry"
)

// Incidence maps every vertex to the obstacle segments ending on it. It is
// built once per graph computation and only read by the sweeps.
type Incidence struct {
	byPoint  map[geometry.Point][]geometry.Segment
	segments []geometry.Segment
}

// NewIncidence indexes the given obstacles. Degenerate and duplicate segments
// are skipped.
func NewIncidence(segments []geometry.Segment) *Incidence {
	inc := &Incidence{
		byPoint:  make(map[geometry.Point][]geometry.Segment),
		segments: make([]geometry.Segment, 0, len(segments)),
	}

	seen := make(map[geometry.Segment]struct{}, len(segments))
	for _, s := range segments {
		s = s.Canonical()
		if s.IsDegenerate() {
			continue
		}

		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}

		inc.segments = append(inc.segments, s)
		inc.byPoint[s.P1] = append(inc.byPoint[s.P1], s)
		inc.byPoint[s.P2] = append(inc.byPoint[s.P2], s)
	}

	return inc
}

// At returns the obstacles having p as an endpoint.
func (inc *Incidence) At(p geometry.Point) []geometry.Segment {
	return inc.byPoint[p]
}

// Segments returns every indexed obstacle.
func (inc *Incidence) Segments() []geometry.Segment {
	return inc.segments
}

func sameDirection(origin, a, b geometry.Point) bool {
	if geometry.Orientation(origin, a, b) != 0 {
		return false
	}

	da := a.Sub(origin)
	db := b.Sub(origin)
	return da.X*db.X+da.Y*db.Y > 0
}

// passesThrough reports whether p lies on s without being one of its
// endpoints.
func passesThrough(s geometry.Segment, p geometry.Point) bool {
	if s.Has(p) || geometry.Orientation(s.P1, s.P2, p) != 0 {
		return false
	}

	d1 := s.P1.Sub(p)
	d2 := s.P2.Sub(p)
	return d1.X*d2.X+d1.Y*d2.Y < 0
}
