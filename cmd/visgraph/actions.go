package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/bytearena/visgraph/common/render"
	"github.com/bytearena/visgraph/common/scenefile"
	"github.com/bytearena/visgraph/common/utils"
	"github.com/bytearena/visgraph/common/visibility2d"
	numberutils "github.com/bytearena/visgraph/utils"
	"github.com/cheggaaa/pb"
	"github.com/davecgh/go-spew/spew"
	bettererrors "github.com/xtuc/better-errors"
)

type graphOptions struct {
	in       string
	out      string
	png      string
	pngSize  int
	workers  int
	verify   bool
	split    bool
	merge    bool
	progress bool
	dump     bool
}

func readScene(in string) (*geometry.Collection, error) {
	var r io.Reader = os.Stdin

	if in != "-" {
		file, err := os.Open(in)
		if err != nil {
			return nil, bettererrors.
				New("Could not open scene file").
				With(err).
				SetContext("file", in)
		}
		defer file.Close()

		r = file
	}

	scene, err := scenefile.Decode(r)
	if err != nil {
		return nil, bettererrors.
			New("Could not decode scene").
			With(err).
			SetContext("file", in)
	}

	return scene, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func createOutput(out string) (io.WriteCloser, error) {
	if out == "-" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(out)
	if err != nil {
		return nil, bettererrors.
			New("Could not create output file").
			With(err).
			SetContext("file", out)
	}

	return file, nil
}

// cleanScene applies the requested repairs. Crossings left afterwards are
// only reported.
func cleanScene(scene *geometry.Collection, split, merge bool) (*geometry.Collection, error) {
	if !split && !merge {
		return scene, nil
	}

	segments := scene.Segments()
	if split {
		segments = geometry.BreakIntersections(segments)
	}

	polygons := scene.Polygons()
	if merge {
		merged, err := geometry.MergePolygons(polygons)
		if err != nil {
			return nil, bettererrors.New("Could not merge polygons").With(err)
		}
		polygons = merged
	}

	res := geometry.NewCollection()
	for _, p := range scene.Points() {
		if err := res.Add(p); err != nil {
			return nil, err
		}
	}

	for _, s := range segments {
		if err := res.Add(s); err != nil {
			return nil, err
		}
	}

	for _, poly := range polygons {
		if err := res.Add(poly); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func graphAction(opts graphOptions) error {
	scene, err := readScene(opts.in)
	if err != nil {
		return err
	}

	scene, err = cleanScene(scene, opts.split, opts.merge)
	if err != nil {
		return err
	}

	if err := scene.Validate(); err != nil {
		// stdout may carry the graph
		if opts.out == "-" {
			log.Println("Warning:", err)
		} else {
			utils.WarnWith(utils.Chain("The scene has crossing obstacles, some edges may be wrong", err))
		}
	}

	buildOpts := visibility2d.Options{Workers: opts.workers}

	var bar *pb.ProgressBar
	if opts.progress {
		bar = pb.New(len(scene.AllPoints()))
		bar.Output = os.Stderr
		bar.SetWidth(80)
		bar.Start()

		buildOpts.Progress = func(geometry.Point, []geometry.Point) {
			bar.Increment()
		}
	}

	start := time.Now()
	graph, err := visibility2d.Build(context.Background(), scene, buildOpts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return bettererrors.New("Could not compute the visibility graph").With(err)
	}

	log.Printf(
		"%d vertices, %d edges in %.2f ms\n",
		len(graph.Points()),
		len(graph.Segments()),
		numberutils.DiffMs(time.Now(), start),
	)

	if opts.verify {
		if err := verify(scene, graph); err != nil {
			return err
		}
		log.Println("Graph matches the brute force computation")
	}

	if opts.dump {
		spew.Fdump(os.Stderr, graph.Segments())
	}

	if err := writeGraph(opts.out, graph); err != nil {
		return err
	}

	if opts.png != "" {
		if err := writePNG(opts.png, scene, graph, opts.pngSize); err != nil {
			return err
		}
	}

	return nil
}

func verify(scene, graph *geometry.Collection) error {
	oracle, err := visibility2d.BruteForce(scene)
	if err != nil {
		return bettererrors.New("Could not compute the brute force graph").With(err)
	}

	missing, extra := diffSegments(oracle.Segments(), graph.Segments())
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	berror := bettererrors.
		New("The graph does not match the brute force computation").
		SetContext("missing edges", fmt.Sprint(len(missing))).
		SetContext("extra edges", fmt.Sprint(len(extra)))

	if len(missing) > 0 {
		berror = berror.SetContext("first missing", missing[0].String())
	}

	if len(extra) > 0 {
		berror = berror.SetContext("first extra", extra[0].String())
	}

	return berror
}

// diffSegments returns what is only in want, then what is only in got.
func diffSegments(want, got []geometry.Segment) (missing, extra []geometry.Segment) {
	inGot := make(map[geometry.Segment]bool, len(got))
	for _, s := range got {
		inGot[s] = true
	}

	inWant := make(map[geometry.Segment]bool, len(want))
	for _, s := range want {
		inWant[s] = true
		if !inGot[s] {
			missing = append(missing, s)
		}
	}

	for _, s := range got {
		if !inWant[s] {
			extra = append(extra, s)
		}
	}

	return missing, extra
}

func writeGraph(out string, graph *geometry.Collection) error {
	w, err := createOutput(out)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := scenefile.Encode(w, graph); err != nil {
		return bettererrors.New("Could not write graph").With(err).SetContext("file", out)
	}

	return nil
}

func writePNG(out string, scene, graph *geometry.Collection, size int) error {
	w, err := createOutput(out)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := render.PNG(w, scene, graph, render.DefaultOptions(size)); err != nil {
		return bettererrors.New("Could not render graph").With(err).SetContext("file", out)
	}

	return nil
}

func checkAction(in string, w io.Writer) error {
	scene, err := readScene(in)
	if err != nil {
		return err
	}

	crossings := geometry.FindCrossings(scene.AllSegments())

	fmt.Fprintf(w, "%d vertices, %d obstacles, %d crossings\n",
		len(scene.AllPoints()),
		len(scene.AllSegments()),
		len(crossings),
	)

	for _, c := range crossings {
		fmt.Fprintf(w, "%v crosses %v at (%s, %s)\n",
			c.A, c.B,
			numberutils.FormatCoord(c.At.X),
			numberutils.FormatCoord(c.At.Y),
		)
	}

	if len(crossings) > 0 {
		return bettererrors.
			New("The scene has crossing obstacles").
			SetContext("crossings", fmt.Sprint(len(crossings))).
			SetContext("hint", "run graph with --split or --merge")
	}

	return nil
}
