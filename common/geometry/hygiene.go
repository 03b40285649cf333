package geometry

import (
	"math"
	"sort"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// parameters closer than this to a segment end count as touching the end
const crossingTolerance = 1e-9

// Crossing is a pair of segments meeting at a point interior to both.
type Crossing struct {
	A, B Segment
	At   Point
}

type spatialSegment struct {
	index   int
	segment Segment
	bounds  rtreego.Rect
}

func (s *spatialSegment) Bounds() rtreego.Rect {
	return s.bounds
}

func segmentBounds(s Segment) rtreego.Rect {
	minX, maxX := math.Min(s.P1.X, s.P2.X), math.Max(s.P1.X, s.P2.X)
	minY, maxY := math.Min(s.P1.Y, s.P2.Y), math.Max(s.P1.Y, s.P2.Y)

	// rtreego refuses empty extents; axis-aligned segments get a margin
	margin := crossingTolerance * (1 + math.Max(math.Max(math.Abs(minX), math.Abs(maxX)), math.Max(math.Abs(minY), math.Abs(maxY))))

	rect, err := rtreego.NewRect(
		rtreego.Point{minX - margin, minY - margin},
		[]float64{maxX - minX + 2*margin, maxY - minY + 2*margin},
	)
	if err != nil {
		// lengths are positive by construction
		panic(err)
	}

	return rect
}

func buildSegmentTree(segments []Segment) (*rtreego.Rtree, []*spatialSegment) {
	spatials := make([]rtreego.Spatial, 0, len(segments))
	items := make([]*spatialSegment, 0, len(segments))
	for i, s := range segments {
		if s.IsDegenerate() {
			continue
		}

		item := &spatialSegment{index: i, segment: s, bounds: segmentBounds(s)}
		items = append(items, item)
		spatials = append(spatials, item)
	}

	return rtreego.NewTree(2, 25, 50, spatials...), items
}

// properIntersection reports an intersection lying strictly inside both
// segments.
func properIntersection(a, b Segment) (Point, bool) {
	t1, t2, ok := parametricIntersection(a.P1, a.P2, b.P1, b.P2)
	if !ok {
		return Point{}, false
	}

	if t1 <= crossingTolerance || t1 >= 1-crossingTolerance || t2 <= crossingTolerance || t2 >= 1-crossingTolerance {
		return Point{}, false
	}

	return Point{
		a.P1.X + t1*(a.P2.X-a.P1.X),
		a.P1.Y + t1*(a.P2.Y-a.P1.Y),
	}, true
}

// forEachCrossing calls fn once per crossing pair, with i < j indexes into
// segments.
func forEachCrossing(segments []Segment, fn func(i, j int, at Point)) {
	tree, items := buildSegmentTree(segments)

	for _, item := range items {
		matching := tree.SearchIntersect(item.bounds)
		for _, spatial := range matching {
			other := spatial.(*spatialSegment)
			if other.index <= item.index {
				continue
			}

			if at, ok := properIntersection(item.segment, other.segment); ok {
				fn(item.index, other.index, at)
			}
		}
	}
}

// FindCrossings returns every pair of segments crossing at a point interior to
// both, ordered by the first segment then the second.
func FindCrossings(segments []Segment) []Crossing {
	type indexed struct {
		i, j int
		at   Point
	}

	found := make([]indexed, 0)
	forEachCrossing(segments, func(i, j int, at Point) {
		found = append(found, indexed{i, j, at})
	})

	sort.Slice(found, func(a, b int) bool {
		if found[a].i != found[b].i {
			return found[a].i < found[b].i
		}
		return found[a].j < found[b].j
	})

	res := make([]Crossing, len(found))
	for k, f := range found {
		res[k] = Crossing{A: segments[f.i], B: segments[f.j], At: f.at}
	}

	return res
}

// BreakIntersections splits every segment at the points where it crosses
// another one, so that the result only meets at endpoints. Degenerate segments
// are dropped.
func BreakIntersections(segments []Segment) []Segment {
	cuts := make(map[int][]Point)
	forEachCrossing(segments, func(i, j int, at Point) {
		cuts[i] = append(cuts[i], at)
		cuts[j] = append(cuts[j], at)
	})

	set := make(map[Segment]struct{}, len(segments))
	for i, s := range segments {
		if s.IsDegenerate() {
			continue
		}

		points := cuts[i]
		start := s.P1
		sort.Slice(points, func(a, b int) bool {
			return Distance(start, points[a]) < Distance(start, points[b])
		})

		for _, at := range points {
			if at != start {
				set[MakeSegment(start, at)] = struct{}{}
			}
			start = at
		}

		if start != s.P2 {
			set[MakeSegment(start, s.P2)] = struct{}{}
		}
	}

	res := make([]Segment, 0, len(set))
	for s := range set {
		res = append(res, s)
	}

	sortSegments(res)
	return res
}

// MergePolygons replaces the polygons by the contours of their union, so that
// overlapping obstacles share one boundary. Holes of the union come back as
// separate polygons; as only boundaries obstruct, that keeps the obstacle
// set intact.
func MergePolygons(polygons []Polygon) ([]Polygon, error) {
	if len(polygons) == 0 {
		return []Polygon{}, nil
	}

	union := toClipPolygon(polygons[0])
	for _, poly := range polygons[1:] {
		union = union.Construct(polyclip.UNION, toClipPolygon(poly))
	}

	res := make([]Polygon, 0, len(union))
	for _, contour := range union {
		points := make([]Point, 0, len(contour))
		for _, p := range contour {
			pt := MakePoint(p.X, p.Y)
			if len(points) > 0 && points[len(points)-1] == pt {
				continue
			}
			points = append(points, pt)
		}

		for len(points) > 1 && points[0] == points[len(points)-1] {
			points = points[:len(points)-1]
		}

		if len(points) < 3 {
			continue
		}

		poly, err := NewPolygon(points...)
		if err != nil {
			return nil, errors.Wrap(err, "merging polygons")
		}

		res = append(res, poly)
	}

	return res, nil
}

func toClipPolygon(p Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, len(p.points))
	for i, pt := range p.points {
		contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
	}

	return polyclip.Polygon{contour}
}
