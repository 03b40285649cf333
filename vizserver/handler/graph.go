package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/bytearena/visgraph/common/render"
	"github.com/bytearena/visgraph/common/scenefile"
	"github.com/bytearena/visgraph/common/utils"
	"github.com/bytearena/visgraph/common/visibility2d"
	numberutils "github.com/bytearena/visgraph/utils"
	"github.com/bytearena/visgraph/vizserver/types"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Settings are the server limits the graph handlers honour.
type Settings struct {
	Workers     int
	MaxVertices int
	PNGSize     int
	Counters    types.Counters
	Events      *types.Publisher
}

// bytesPerVertex bounds the JSON text a scene needs per vertex, indentation
// and the repeated endpoints of segments included.
const bytesPerVertex = 256

// maxBodyBytes is the largest scene body accepted for maxVertices vertices.
func maxBodyBytes(maxVertices int) int64 {
	return int64(maxVertices)*bytesPerVertex + 4096
}

type GraphResponse struct {
	Id       string          `json:"id"`
	Name     string          `json:"name"`
	Vertices int             `json:"vertices"`
	Edges    int             `json:"edges"`
	Ms       float64         `json:"ms"`
	Graph    scenefile.Scene `json:"graph"`
}

func makeGraphResponse(graph *types.VizGraph) GraphResponse {
	return GraphResponse{
		Id:       graph.GetId(),
		Name:     graph.GetName(),
		Vertices: graph.GetNumberVertices(),
		Edges:    graph.GetNumberEdges(),
		Ms:       numberutils.ToFixed(numberutils.DurationMs(graph.GetDuration()), 3),
		Graph:    scenefile.FromCollection(graph.GetGraph()),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func PostGraph(graphs *types.VizGraphMap, settings Settings) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes(settings.MaxVertices))

		scene, err := scenefile.Decode(body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, map[string]interface{}{
					"error":    "scene too large",
					"maxbytes": tooLarge.Limit,
				})
				return
			}

			writeError(w, http.StatusBadRequest, err)
			return
		}

		if n := len(scene.AllPoints()); n > settings.MaxVertices {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]interface{}{
				"error":       "too many vertices",
				"vertices":    n,
				"maxvertices": settings.MaxVertices,
			})
			return
		}

		if err := scene.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}

		graph, err := compute(r.Context(), scene, settings)
		if err != nil {
			log.Println("VIZ Could not compute graph:", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		graphs.Add(graph)
		settings.Counters.Record(graph)

		settings.Events.Post(types.Event{
			Type:     types.EventGraph,
			Graph:    graph.GetId(),
			Vertices: graph.GetNumberVertices(),
			Edges:    graph.GetNumberEdges(),
			Ms:       numberutils.DurationMs(graph.GetDuration()),
		})

		utils.DebugWith("viz-server", "graph computed", utils.Context{
			"graph":    graph.GetId(),
			"vertices": graph.GetNumberVertices(),
			"edges":    graph.GetNumberEdges(),
		})

		writeJSON(w, http.StatusOK, makeGraphResponse(graph))
	}
}

func compute(ctx context.Context, scene *geometry.Collection, settings Settings) (*types.VizGraph, error) {
	start := time.Now()

	graph, err := visibility2d.Build(ctx, scene, visibility2d.Options{
		Workers: settings.Workers,
		Progress: func(origin geometry.Point, visible []geometry.Point) {
			vertex := scenefile.ScenePoint{X: origin.X, Y: origin.Y}
			settings.Events.Post(types.Event{
				Type:    types.EventVertex,
				Vertex:  &vertex,
				Visible: len(visible),
			})
		},
	})
	if err != nil {
		return nil, err
	}

	return types.NewVizGraph(scene, graph, time.Since(start)), nil
}

func lookup(graphs *types.VizGraphMap, w http.ResponseWriter, r *http.Request) *types.VizGraph {
	vars := mux.Vars(r)
	graph := graphs.Get(vars["id"])

	if graph == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "graph not found", "id": vars["id"]})
	}

	return graph
}

func GetGraph(graphs *types.VizGraphMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		graph := lookup(graphs, w, r)
		if graph == nil {
			return
		}

		writeJSON(w, http.StatusOK, makeGraphResponse(graph))
	}
}

func GraphPNG(graphs *types.VizGraphMap, settings Settings) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		graph := lookup(graphs, w, r)
		if graph == nil {
			return
		}

		var buf bytes.Buffer
		err := render.PNG(&buf, graph.GetScene(), graph.GetGraph(), render.DefaultOptions(settings.PNGSize))
		if err != nil {
			log.Println("VIZ Could not render graph", graph.GetId(), err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}
