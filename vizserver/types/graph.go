package types

import (
	"time"

	"github.com/bytearena/visgraph/common/geometry"
	petname "github.com/dustinkirkland/golang-petname"
	uuid "github.com/satori/go.uuid"
)

// VizGraph is a scene posted to the server and its computed visibility
// graph.
type VizGraph struct {
	id       string
	name     string
	scene    *geometry.Collection
	graph    *geometry.Collection
	created  time.Time
	duration time.Duration
}

func NewVizGraph(scene, graph *geometry.Collection, duration time.Duration) *VizGraph {
	return &VizGraph{
		id:       uuid.NewV4().String(),
		name:     petname.Generate(2, "-"),
		scene:    scene,
		graph:    graph,
		created:  time.Now(),
		duration: duration,
	}
}

func (g *VizGraph) GetId() string {
	return g.id
}

// GetName is a readable name for listings; unlike the id it may repeat.
func (g *VizGraph) GetName() string {
	return g.name
}

func (g *VizGraph) GetScene() *geometry.Collection {
	return g.scene
}

func (g *VizGraph) GetGraph() *geometry.Collection {
	return g.graph
}

func (g *VizGraph) GetCreated() time.Time {
	return g.created
}

func (g *VizGraph) GetDuration() time.Duration {
	return g.duration
}

func (g *VizGraph) GetNumberVertices() int {
	return len(g.graph.Points())
}

func (g *VizGraph) GetNumberEdges() int {
	return len(g.graph.Segments())
}
