package scenefile

import (
	"encoding/json"
	"io"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/pkg/errors"
)

var ErrMalformed = errors.New("scenefile: malformed scene")

// Scene is the JSON form of a geometry.Collection:
//
//	{"points": [[x, y]], "segments": [[[x, y], [x, y]]], "polygons": [[[x, y], ...]]}
type Scene struct {
	Points   []ScenePoint   `json:"points"`
	Segments []SceneSegment `json:"segments"`
	Polygons []ScenePolygon `json:"polygons"`
}

type ScenePoint struct {
	X float64
	Y float64
}

func (p ScenePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.X, p.Y})
}

func (p *ScenePoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return errors.Wrapf(ErrMalformed, "point %s: %v", b, err)
	}

	if len(floats) != 2 {
		return errors.Wrapf(ErrMalformed, "point %s has %d coordinates", b, len(floats))
	}

	p.X = floats[0]
	p.Y = floats[1]

	return nil
}

func (p ScenePoint) geometry() geometry.Point {
	return geometry.MakePoint(p.X, p.Y)
}

func makeScenePoint(p geometry.Point) ScenePoint {
	return ScenePoint{X: p.X, Y: p.Y}
}

type SceneSegment struct {
	A ScenePoint
	B ScenePoint
}

func (s SceneSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal([]ScenePoint{s.A, s.B})
}

func (s *SceneSegment) UnmarshalJSON(b []byte) error {
	var points []ScenePoint
	if err := json.Unmarshal(b, &points); err != nil {
		return err
	}

	if len(points) != 2 {
		return errors.Wrapf(ErrMalformed, "segment %s has %d points", b, len(points))
	}

	s.A = points[0]
	s.B = points[1]

	return nil
}

type ScenePolygon struct {
	Points []ScenePoint
}

func (p ScenePolygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Points)
}

func (p *ScenePolygon) UnmarshalJSON(b []byte) error {
	var points []ScenePoint
	if err := json.Unmarshal(b, &points); err != nil {
		return err
	}

	if len(points) < 3 {
		return errors.Wrapf(ErrMalformed, "polygon %s has %d points", b, len(points))
	}

	p.Points = points

	return nil
}

// FromCollection lists the loose points, loose segments and polygons of c.
func FromCollection(c *geometry.Collection) Scene {
	scene := Scene{
		Points:   make([]ScenePoint, 0),
		Segments: make([]SceneSegment, 0),
		Polygons: make([]ScenePolygon, 0),
	}

	for _, p := range c.Points() {
		scene.Points = append(scene.Points, makeScenePoint(p))
	}

	for _, s := range c.Segments() {
		scene.Segments = append(scene.Segments, SceneSegment{
			A: makeScenePoint(s.P1),
			B: makeScenePoint(s.P2),
		})
	}

	for _, poly := range c.Polygons() {
		points := make([]ScenePoint, 0, poly.Len())
		for _, p := range poly.Points() {
			points = append(points, makeScenePoint(p))
		}

		scene.Polygons = append(scene.Polygons, ScenePolygon{Points: points})
	}

	return scene
}

func (scene Scene) Collection() (*geometry.Collection, error) {
	c := geometry.NewCollection()

	for _, p := range scene.Points {
		if err := c.Add(p.geometry()); err != nil {
			return nil, err
		}
	}

	for _, s := range scene.Segments {
		if err := c.Add(geometry.MakeSegment(s.A.geometry(), s.B.geometry())); err != nil {
			return nil, err
		}
	}

	for i, sp := range scene.Polygons {
		points := make([]geometry.Point, len(sp.Points))
		for j, p := range sp.Points {
			points[j] = p.geometry()
		}

		poly, err := geometry.NewPolygon(points...)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}

		if err := c.Add(poly); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func Marshal(c *geometry.Collection) ([]byte, error) {
	return json.Marshal(FromCollection(c))
}

func Unmarshal(data []byte) (*geometry.Collection, error) {
	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, errors.Wrap(err, "could not decode scene")
	}

	return scene.Collection()
}

func Encode(w io.Writer, c *geometry.Collection) error {
	return json.NewEncoder(w).Encode(FromCollection(c))
}

func Decode(r io.Reader) (*geometry.Collection, error) {
	var scene Scene
	if err := json.NewDecoder(r).Decode(&scene); err != nil {
		return nil, errors.Wrap(err, "could not decode scene")
	}

	return scene.Collection()
}
