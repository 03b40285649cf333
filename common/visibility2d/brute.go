package visibility2d

import (
	"github.com/bytearena/visgraph/common/geometry"
)

// BruteForce computes the same graph as ComputeGraph by testing every pair of
// vertices against every obstacle. It is cubic and only meant to check the
// sweep.
func BruteForce(scene *geometry.Collection) (*geometry.Collection, error) {
	points := scene.AllPoints()
	obstacles := scene.AllSegments()

	visible := make([][]geometry.Point, len(points))

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			candidate := geometry.MakeSegment(points[i], points[j])

			if !blocked(candidate, obstacles) {
				visible[i] = append(visible[i], points[j])
			}
		}
	}

	return assemble(points, visible)
}

func blocked(candidate geometry.Segment, obstacles []geometry.Segment) bool {
	for _, obstacle := range obstacles {
		if obstacle.IsDegenerate() {
			continue
		}

		if obstacle.Has(candidate.P1) || obstacle.Has(candidate.P2) {
			continue
		}

		if _, ok := geometry.SegmentsIntersect(candidate, obstacle); ok {
			return true
		}
	}

	return false
}
