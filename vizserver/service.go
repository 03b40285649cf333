package vizserver

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bytearena/visgraph/common/config"
	"github.com/bytearena/visgraph/common/healthcheck"
	"github.com/bytearena/visgraph/common/influxdb"
	"github.com/bytearena/visgraph/common/utils"
	apphandler "github.com/bytearena/visgraph/vizserver/handler"
	"github.com/bytearena/visgraph/vizserver/types"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type VizService struct {
	conf     config.Config
	graphs   *types.VizGraphMap
	watchers *types.WatcherMap
	health   *healthcheck.HealthCheckServer
	counters types.Counters
	events   *types.Publisher
	logger   io.Writer
}

// eventQueueSize is how many events may wait for the watchers before new
// ones are dropped.
const eventQueueSize = 1024

func NewVizService(conf config.Config) *VizService {
	viz := &VizService{
		conf:     conf,
		graphs:   types.NewVizGraphMap(),
		watchers: types.NewWatcherMap(),
		health:   healthcheck.NewHealthCheckServer(),
		counters: types.NewCounters(),
		events:   types.NewPublisher(eventQueueSize),
		logger:   os.Stdout,
	}

	viz.health.Register("config", func() (error, bool) {
		return conf.Validate(), true
	})

	return viz
}

// SetLogger redirects the access log.
func (viz *VizService) SetLogger(logger io.Writer) {
	viz.logger = logger
}

// Close stops forwarding events to the watchers.
func (viz *VizService) Close() {
	viz.events.Close()
}

func (viz *VizService) Graphs() *types.VizGraphMap {
	return viz.graphs
}

func (viz *VizService) Router() *mux.Router {
	settings := apphandler.Settings{
		Workers:     viz.conf.GetWorkers(),
		MaxVertices: viz.conf.GetMaxVertices(),
		PNGSize:     viz.conf.GetPNGSize(),
		Counters:    viz.counters,
		Events:      viz.events,
	}

	logger := viz.logger
	router := mux.NewRouter()
	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.graphs, viz.watchers)),
	)).Methods("GET")

	router.Handle("/graph", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.PostGraph(viz.graphs, settings)),
	)).Methods("POST")

	router.Handle("/graph/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.GetGraph(viz.graphs)),
	)).Methods("GET")

	router.Handle("/graph/{id:[a-zA-Z0-9\\-]+}/png", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.GraphPNG(viz.graphs, settings)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.watchers)),
	)).Methods("GET")

	router.Handle("/health", viz.health).Methods("GET")

	return router
}

func (viz *VizService) ListenAndServe() error {
	metrics, err := influxdb.NewClient("viz-server")
	if err != nil {
		utils.WarnWith(utils.Chain("Metrics reporting is disabled", err))
	}
	defer metrics.TearDown()

	metrics.Loop(func() {
		if err := metrics.WriteAppMetric("visgraph", viz.counters.Fields()); err != nil {
			log.Println("VIZ Could not report metrics:", err)
		}
	})

	log.Println("VIZ Listening on " + viz.conf.GetAddr())

	return http.ListenAndServe(viz.conf.GetAddr(), viz.Router())
}
