package visibility2d

import (
	"context"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers is the number of sweeps running at once. 0 and 1 sweep one
	// vertex after the other.
	Workers int

	// Progress, if set, is called once per swept vertex with what it sees.
	// With several workers it is called from several goroutines.
	Progress func(origin geometry.Point, visible []geometry.Point)
}

// ComputeGraph returns the visibility graph of scene: every vertex of the
// scene, and a segment between each pair of mutually visible vertices. The
// scene is not modified.
func ComputeGraph(scene *geometry.Collection) (*geometry.Collection, error) {
	return Build(context.Background(), scene, Options{})
}

// Build is ComputeGraph with options. It stops early when ctx is done.
func Build(ctx context.Context, scene *geometry.Collection, opts Options) (*geometry.Collection, error) {
	points := scene.AllPoints()
	incidence := NewIncidence(scene.AllSegments())

	visible := make([][]geometry.Point, len(points))

	sweepOne := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := VisibleVertices(points[i], points, incidence)
		if err != nil {
			return err
		}

		visible[i] = res
		if opts.Progress != nil {
			opts.Progress(points[i], res)
		}

		return nil
	}

	if opts.Workers <= 1 {
		for i := range points {
			if err := sweepOne(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		ctx = gctx

		for i := range points {
			i := i
			g.Go(func() error {
				return sweepOne(i)
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return assemble(points, visible)
}

func assemble(points []geometry.Point, visible [][]geometry.Point) (*geometry.Collection, error) {
	graph := geometry.NewCollection()

	for _, p := range points {
		if err := graph.Add(p); err != nil {
			return nil, errors.Wrap(err, "could not add vertex to graph")
		}
	}

	for i, origin := range points {
		for _, p := range visible[i] {
			if err := graph.Add(geometry.MakeSegment(origin, p)); err != nil {
				return nil, errors.Wrap(err, "could not add edge to graph")
			}
		}
	}

	return graph, nil
}
