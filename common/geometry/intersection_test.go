package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type intersectionCase struct {
	Name           string
	P1, P2, P3, P4 Point
	R1, R2         Restriction
	Hit            bool
	At             Point
}

func TestIntersectionRestrictions(t *testing.T) {
	// crossing lines: t1 = 0.5 on (0,0)-(2,2), t2 = 0.5 on (0,2)-(2,0)
	a1, a2 := MakePoint(0, 0), MakePoint(2, 2)
	b1, b2 := MakePoint(0, 2), MakePoint(2, 0)

	// intersection lies before the first line's start (t1 = -2)
	c1, c2 := MakePoint(2, 0), MakePoint(3, 0)
	d1, d2 := MakePoint(0, -1), MakePoint(0, 1)

	// intersection lies past the first line's end (t1 = 2)
	e1, e2 := MakePoint(0, 0), MakePoint(1, 0)
	f1, f2 := MakePoint(2, -1), MakePoint(2, 1)

	examples := []intersectionCase{
		{Name: "line/line crossing", P1: a1, P2: a2, P3: b1, P4: b2, R1: RestrictLine, R2: RestrictLine, Hit: true, At: MakePoint(1, 1)},
		{Name: "segment/segment crossing", P1: a1, P2: a2, P3: b1, P4: b2, R1: RestrictSegment, R2: RestrictSegment, Hit: true, At: MakePoint(1, 1)},
		{Name: "ray/ray crossing", P1: a1, P2: a2, P3: b1, P4: b2, R1: RestrictRay, R2: RestrictRay, Hit: true, At: MakePoint(1, 1)},
		{Name: "ray-inverse/ray-inverse crossing", P1: a1, P2: a2, P3: b1, P4: b2, R1: RestrictRayInverse, R2: RestrictRayInverse, Hit: true, At: MakePoint(1, 1)},

		{Name: "line behind start", P1: c1, P2: c2, P3: d1, P4: d2, R1: RestrictLine, R2: RestrictLine, Hit: true, At: MakePoint(0, 0)},
		{Name: "segment behind start", P1: c1, P2: c2, P3: d1, P4: d2, R1: RestrictSegment, R2: RestrictSegment, Hit: false},
		{Name: "ray behind start", P1: c1, P2: c2, P3: d1, P4: d2, R1: RestrictRay, R2: RestrictRay, Hit: false},
		{Name: "ray-inverse behind start", P1: c1, P2: c2, P3: d1, P4: d2, R1: RestrictRayInverse, R2: RestrictRayInverse, Hit: true, At: MakePoint(0, 0)},

		{Name: "line past end", P1: e1, P2: e2, P3: f1, P4: f2, R1: RestrictLine, R2: RestrictLine, Hit: true, At: MakePoint(2, 0)},
		{Name: "segment past end", P1: e1, P2: e2, P3: f1, P4: f2, R1: RestrictSegment, R2: RestrictSegment, Hit: false},
		{Name: "ray past end", P1: e1, P2: e2, P3: f1, P4: f2, R1: RestrictRay, R2: RestrictRay, Hit: true, At: MakePoint(2, 0)},
		{Name: "ray-inverse past end", P1: e1, P2: e2, P3: f1, P4: f2, R1: RestrictRayInverse, R2: RestrictRayInverse, Hit: false},

		{Name: "segment touching at t=0", P1: MakePoint(0, 0), P2: MakePoint(4, 0), P3: MakePoint(0, -2), P4: MakePoint(0, 2), R1: RestrictSegment, R2: RestrictSegment, Hit: true, At: MakePoint(0, 0)},
		{Name: "segment touching at t=1", P1: MakePoint(0, 0), P2: MakePoint(4, 0), P3: MakePoint(4, -2), P4: MakePoint(4, 2), R1: RestrictSegment, R2: RestrictSegment, Hit: true, At: MakePoint(4, 0)},
		{Name: "second segment ending on first", P1: MakePoint(0, 0), P2: MakePoint(4, 0), P3: MakePoint(2, 0), P4: MakePoint(2, 2), R1: RestrictSegment, R2: RestrictSegment, Hit: true, At: MakePoint(2, 0)},
		{Name: "ray starting on the other segment", P1: MakePoint(2, 0), P2: MakePoint(2, 5), P3: MakePoint(0, 0), P4: MakePoint(4, 0), R1: RestrictRay, R2: RestrictSegment, Hit: true, At: MakePoint(2, 0)},
		{Name: "ray-inverse ending on the other segment", P1: MakePoint(2, -5), P2: MakePoint(2, 0), P3: MakePoint(0, 0), P4: MakePoint(4, 0), R1: RestrictRayInverse, R2: RestrictSegment, Hit: true, At: MakePoint(2, 0)},

		{Name: "parallel lines", P1: MakePoint(0, 0), P2: MakePoint(1, 0), P3: MakePoint(0, 1), P4: MakePoint(1, 1), R1: RestrictLine, R2: RestrictLine, Hit: false},
		{Name: "parallel segments", P1: MakePoint(0, 0), P2: MakePoint(1, 0), P3: MakePoint(0, 1), P4: MakePoint(1, 1), R1: RestrictSegment, R2: RestrictSegment, Hit: false},
		{Name: "coincident segments", P1: MakePoint(0, 0), P2: MakePoint(2, 0), P3: MakePoint(1, 0), P4: MakePoint(3, 0), R1: RestrictSegment, R2: RestrictSegment, Hit: false},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			at, hit := Intersection(example.P1, example.P2, example.P3, example.P4, example.R1, example.R2)
			assert.Equal(t, example.Hit, hit)
			if example.Hit {
				assert.InDelta(t, example.At.X, at.X, 1e-12)
				assert.InDelta(t, example.At.Y, at.Y, 1e-12)
			}
		})
	}
}

func TestRestrictionString(t *testing.T) {
	assert.Equal(t, "line", RestrictLine.String())
	assert.Equal(t, "segment", RestrictSegment.String())
	assert.Equal(t, "ray", RestrictRay.String())
	assert.Equal(t, "ray-inverse", RestrictRayInverse.String())
}

func TestSegmentsIntersect(t *testing.T) {
	_, hit := SegmentsIntersect(MakeSegment(MakePoint(0, 0), MakePoint(10, 10)), MakeSegment(MakePoint(0, 10), MakePoint(10, 0)))
	assert.True(t, hit)

	_, hit = SegmentsIntersect(MakeSegment(MakePoint(0, 0), MakePoint(1, 1)), MakeSegment(MakePoint(0, 10), MakePoint(10, 0)))
	assert.False(t, hit)
}
