package visibility2d

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneCell = 100.0

func randomPoint(rnd *rand.Rand, cx, cy, radius float64) geometry.Point {
	a := rnd.Float64() * 2 * math.Pi
	r := rnd.Float64() * radius
	return pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
}

func randomConvexPolygon(t *testing.T, rnd *rand.Rand, cx, cy float64) geometry.Polygon {
	n := 3 + rnd.Intn(5)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = rnd.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)

	r := 15 + rnd.Float64()*30
	points := make([]geometry.Point, n)
	for i, a := range angles {
		points[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}

	poly, err := geometry.NewPolygon(points...)
	require.NoError(t, err)
	return poly
}

// randomScene lays obstacles out on a grid, one per cell and never leaving
// it, so that no two obstacles cross.
func randomScene(t *testing.T, seed int64, size int) *geometry.Collection {
	rnd := rand.New(rand.NewSource(seed))
	scene := geometry.NewCollection()

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			cx := float64(i)*sceneCell + sceneCell/2
			cy := float64(j)*sceneCell + sceneCell/2

			switch rnd.Intn(5) {
			case 0:
				require.NoError(t, scene.Add(randomConvexPolygon(t, rnd, cx, cy)))
			case 1:
				require.NoError(t, scene.Add(randomConvexPolygon(t, rnd, cx, cy)))
				require.NoError(t, scene.Add(randomPoint(rnd, cx, cy, 5)))
			case 2:
				a := randomPoint(rnd, cx, cy, 45)
				b := randomPoint(rnd, cx, cy, 45)
				require.NoError(t, scene.Add(geometry.MakeSegment(a, b)))
			case 3:
				for k := rnd.Intn(3); k >= 0; k-- {
					require.NoError(t, scene.Add(randomPoint(rnd, cx, cy, 45)))
				}
			}
		}
	}

	require.NoError(t, scene.Validate())
	return scene
}

// gridScene draws up to 18 segments between points of the integer grid
// 0..10, skipping any that would cross one already drawn. Endpoints are
// shared, vertices line up and segments touch each other's interiors.
func gridScene(t *testing.T, seed int64) *geometry.Collection {
	rnd := rand.New(rand.NewSource(seed))
	gridPoint := func() geometry.Point {
		return pt(float64(rnd.Intn(11)), float64(rnd.Intn(11)))
	}

	scene := geometry.NewCollection()
	for k := rnd.Intn(19); k > 0; k-- {
		s := geometry.MakeSegment(gridPoint(), gridPoint())
		if s.IsDegenerate() {
			continue
		}

		next := scene.Clone()
		require.NoError(t, next.Add(s))
		if next.Validate() != nil {
			continue
		}
		scene = next
	}

	return scene
}

func squareScene(t *testing.T) *geometry.Collection {
	poly, err := geometry.NewPolygon(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10))
	require.NoError(t, err)

	scene := geometry.NewCollection()
	require.NoError(t, scene.Add(poly))
	return scene
}

func TestComputeGraphSquare(t *testing.T) {
	graph, err := ComputeGraph(squareScene(t))
	require.NoError(t, err)

	// the interior of a polygon does not hide anything
	assert.ElementsMatch(t, []geometry.Segment{
		seg(0, 0, 10, 0),
		seg(10, 0, 10, 10),
		seg(10, 10, 0, 10),
		seg(0, 10, 0, 0),
		seg(0, 0, 10, 10),
		seg(10, 0, 0, 10),
	}, graph.Segments())

	assert.Equal(t, []geometry.Point{pt(0, 0), pt(0, 10), pt(10, 0), pt(10, 10)}, graph.Points())
	assert.Empty(t, graph.Polygons())
}

func TestComputeGraphWall(t *testing.T) {
	scene := geometry.NewCollection()
	require.NoError(t, scene.Add(seg(5, -5, 5, 5)))
	require.NoError(t, scene.Add(pt(0, 0)))
	require.NoError(t, scene.Add(pt(10, 0)))

	graph, err := ComputeGraph(scene)
	require.NoError(t, err)

	assert.ElementsMatch(t, []geometry.Segment{
		seg(5, -5, 5, 5),
		seg(0, 0, 5, -5),
		seg(0, 0, 5, 5),
		seg(10, 0, 5, -5),
		seg(10, 0, 5, 5),
	}, graph.Segments())
}

func TestComputeGraphMatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		scene := randomScene(t, seed, 4)

		sweep, err := ComputeGraph(scene)
		require.NoError(t, err)

		oracle, err := BruteForce(scene)
		require.NoError(t, err)

		require.Equal(t, oracle.Points(), sweep.Points(), "seed %d", seed)
		require.Equal(t, oracle.Segments(), sweep.Segments(), "seed %d", seed)
	}
}

func TestComputeGraphMatchesBruteForceOnGrid(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		scene := gridScene(t, seed)

		sweep, err := ComputeGraph(scene)
		require.NoError(t, err)

		oracle, err := BruteForce(scene)
		require.NoError(t, err)

		require.Equal(t, oracle.Points(), sweep.Points(), "seed %d", seed)
		require.Equal(t, oracle.Segments(), sweep.Segments(), "seed %d", seed)
	}
}

func TestVisibilityIsSymmetric(t *testing.T) {
	scene := randomScene(t, 7, 3)
	points := scene.AllPoints()
	incidence := NewIncidence(scene.AllSegments())

	seen := make(map[geometry.Point]map[geometry.Point]bool, len(points))
	for _, p := range points {
		visible, err := VisibleVertices(p, points, incidence)
		require.NoError(t, err)

		seen[p] = make(map[geometry.Point]bool, len(visible))
		for _, v := range visible {
			assert.NotEqual(t, p, v)
			seen[p][v] = true
		}
	}

	for u, visible := range seen {
		for v := range visible {
			assert.True(t, seen[v][u], "%v sees %v but not the other way", u, v)
		}
	}
}

func TestComputeGraphHasNoLoops(t *testing.T) {
	graph, err := ComputeGraph(randomScene(t, 3, 4))
	require.NoError(t, err)

	for _, s := range graph.Segments() {
		assert.False(t, s.IsDegenerate(), "%v", s)
	}
}

func TestComputeGraphIsIdempotent(t *testing.T) {
	scene := randomScene(t, 11, 4)
	before := scene.Clone()

	first, err := ComputeGraph(scene)
	require.NoError(t, err)

	second, err := ComputeGraph(scene)
	require.NoError(t, err)

	assert.Equal(t, first.Segments(), second.Segments())
	assert.Equal(t, first.Points(), second.Points())

	assert.Equal(t, before.Points(), scene.Points())
	assert.Equal(t, before.Segments(), scene.Segments())
	assert.Equal(t, before.Polygons(), scene.Polygons())
}

func TestBuildParallel(t *testing.T) {
	scene := randomScene(t, 5, 4)

	sequential, err := Build(context.Background(), scene, Options{})
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	parallel, err := Build(context.Background(), scene, Options{
		Workers: 4,
		Progress: func(origin geometry.Point, visible []geometry.Point) {
			mu.Lock()
			defer mu.Unlock()
			calls++
		},
	})
	require.NoError(t, err)

	assert.Equal(t, sequential.Segments(), parallel.Segments())
	assert.Equal(t, len(scene.AllPoints()), calls)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, squareScene(t), Options{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Build(ctx, squareScene(t), Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBruteForceSquare(t *testing.T) {
	graph, err := BruteForce(squareScene(t))
	require.NoError(t, err)

	assert.Len(t, graph.Segments(), 6)
}
