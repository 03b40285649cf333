package handler

import (
	"html/template"
	"net/http"

	"github.com/bytearena/visgraph/utils"
	"github.com/bytearena/visgraph/vizserver/types"
)

var homeTemplate = template.Must(template.New("home").Parse(`<h2>Welcome on VISGRAPH VIZ SERVER !</h2>
<p>{{.Watchers}} watchers right now</p>
{{range .Graphs}}<a href="/graph/{{.Id}}/png">{{.Name}}</a> {{.Id}} ({{.Vertices}} vertices, {{.Edges}} edges, {{.Ms}} ms)<br />
{{else}}<p>No graph computed yet. POST a scene to /graph.</p>
{{end}}`))

type homeGraph struct {
	Id       string
	Name     string
	Vertices int
	Edges    int
	Ms       float64
}

func Home(graphs *types.VizGraphMap, watchers *types.WatcherMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		items := make([]homeGraph, 0)
		for _, graph := range graphs.All() {
			items = append(items, homeGraph{
				Id:       graph.GetId(),
				Name:     graph.GetName(),
				Vertices: graph.GetNumberVertices(),
				Edges:    graph.GetNumberEdges(),
				Ms:       utils.ToFixed(utils.DurationMs(graph.GetDuration()), 2),
			})
		}

		homeTemplate.Execute(w, struct {
			Watchers int
			Graphs   []homeGraph
		}{
			Watchers: watchers.Size(),
			Graphs:   items,
		})
	}
}
