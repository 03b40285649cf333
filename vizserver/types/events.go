package types

import (
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/visgraph/common/influxdb"
	"github.com/bytearena/visgraph/common/scenefile"
)

// EventChannel is the go-notify event carrying Event values as JSON strings.
const EventChannel = "visgraph:event"

const postTimeout = 100 * time.Millisecond

const (
	EventInit   = "init"
	EventVertex = "vertex"
	EventGraph  = "graph"
)

type Event struct {
	Type     string                `json:"type"`
	Graph    string                `json:"graph,omitempty"`
	Vertex   *scenefile.ScenePoint `json:"vertex,omitempty"`
	Visible  int                   `json:"visible,omitempty"`
	Vertices int                   `json:"vertices,omitempty"`
	Edges    int                   `json:"edges,omitempty"`
	Ms       float64               `json:"ms,omitempty"`
}

// Publisher forwards events to the websocket watchers from its own
// goroutine. Post never blocks: when the queue is full the event is dropped,
// so a watcher that stopped reading cannot slow down graph computations.
type Publisher struct {
	queue   chan string
	done    chan struct{}
	dropped int64

	lock   sync.RWMutex
	closed bool
}

func NewPublisher(size int) *Publisher {
	p := &Publisher{
		queue: make(chan string, size),
		done:  make(chan struct{}),
	}

	go p.forward()

	return p
}

func (p *Publisher) forward() {
	defer close(p.done)

	for data := range p.queue {
		// E_NOT_FOUND only means nobody is watching
		notify.PostTimeout(EventChannel, data, postTimeout)
	}
}

// Post queues e and reports whether it was accepted.
func (p *Publisher) Post(e Event) bool {
	data, err := json.Marshal(e)
	if err != nil {
		return false
	}

	p.lock.RLock()
	defer p.lock.RUnlock()

	if p.closed {
		return false
	}

	select {
	case p.queue <- string(data):
		return true
	default:
		atomic.AddInt64(&p.dropped, 1)
		return false
	}
}

// Dropped counts the events lost to a full queue.
func (p *Publisher) Dropped() int {
	return int(atomic.LoadInt64(&p.dropped))
}

// Close stops accepting events and waits for the queued ones to be handed
// out.
func (p *Publisher) Close() {
	p.lock.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.lock.Unlock()

	<-p.done
}

// Counters accumulate activity between two metric reports.
type Counters struct {
	Graphs   *influxdb.Counter
	Vertices *influxdb.Counter
	Edges    *influxdb.Counter
}

func NewCounters() Counters {
	return Counters{
		Graphs:   influxdb.NewCounter(),
		Vertices: influxdb.NewCounter(),
		Edges:    influxdb.NewCounter(),
	}
}

func (c Counters) Record(graph *VizGraph) {
	c.Graphs.Add(1)
	c.Vertices.Add(graph.GetNumberVertices())
	c.Edges.Add(graph.GetNumberEdges())
}

// Fields resets the counters and returns their values as metric fields,
// along with the number of graphs computed since startup.
func (c Counters) Fields() map[string]interface{} {
	return map[string]interface{}{
		"graphs":       c.Graphs.GetAndReset(),
		"vertices":     c.Vertices.GetAndReset(),
		"edges":        c.Edges.GetAndReset(),
		"graphs_total": c.Graphs.Total(),
	}
}

func sortByCreation(graphs []*VizGraph) {
	sort.SliceStable(graphs, func(i, j int) bool {
		return graphs[i].GetCreated().Before(graphs[j].GetCreated())
	})
}
