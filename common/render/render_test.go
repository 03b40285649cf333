package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareWithDiagonals(t *testing.T) (*geometry.Collection, *geometry.Collection) {
	poly, err := geometry.NewPolygon(
		geometry.MakePoint(0, 0),
		geometry.MakePoint(10, 0),
		geometry.MakePoint(10, 10),
		geometry.MakePoint(0, 10),
	)
	require.NoError(t, err)

	scene := geometry.NewCollection()
	require.NoError(t, scene.Add(poly))

	graph := geometry.NewCollection()
	require.NoError(t, graph.Add(geometry.MakeSegment(geometry.MakePoint(0, 0), geometry.MakePoint(10, 10))))
	require.NoError(t, graph.Add(geometry.MakeSegment(geometry.MakePoint(10, 0), geometry.MakePoint(0, 10))))

	return scene, graph
}

func TestImage(t *testing.T) {
	scene, graph := squareWithDiagonals(t)

	opts := DefaultOptions(64)
	img, err := Image(scene, graph, opts)
	require.NoError(t, err)

	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, Background, img.RGBAAt(1, 1))

	// both diagonals cross in the middle of the image
	center := img.RGBAAt(32, 32)
	assert.NotEqual(t, Background, center)
	assert.NotEqual(t, PolygonFill, center)
	assert.Greater(t, center.B, center.R)

	// inside the square, away from the diagonals
	assertNear(t, PolygonFill, img.RGBAAt(32, 16))
}

// assertNear allows for the rounding of anti-aliased coverage.
func assertNear(t *testing.T, want, got color.RGBA) {
	t.Helper()

	for _, c := range [][2]uint8{{want.R, got.R}, {want.G, got.G}, {want.B, got.B}} {
		assert.InDelta(t, float64(c[0]), float64(c[1]), 2, "want %v, got %v", want, got)
	}
}

func TestPNG(t *testing.T) {
	scene, graph := squareWithDiagonals(t)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, scene, graph, DefaultOptions(32)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestImageEmptyScene(t *testing.T) {
	img, err := Image(geometry.NewCollection(), nil, DefaultOptions(8))
	require.NoError(t, err)
	assert.Equal(t, Background, img.RGBAAt(4, 4))

	_, err = Image(geometry.NewCollection(), nil, Options{})
	assert.Error(t, err)
}

func TestFitKeepsAspectAndFlipsY(t *testing.T) {
	opts := DefaultOptions(64)
	tr := fit([]geometry.Point{geometry.MakePoint(0, 0), geometry.MakePoint(10, 5)}, opts)

	x, y := tr.apply(geometry.MakePoint(0, 0))
	assert.InDelta(t, 4, x, 1e-4)
	assert.InDelta(t, 60, y, 1e-4)

	x, y = tr.apply(geometry.MakePoint(10, 5))
	assert.InDelta(t, 60, x, 1e-4)
	assert.InDelta(t, 32, y, 1e-4)
}
