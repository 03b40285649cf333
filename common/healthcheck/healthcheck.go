package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/bytearena/visgraph/common/utils"
)

type HealthCheckServer struct {
	Checkers []namedChecker
	lock     sync.RWMutex
}

type HealthChecks struct {
	Status bool
	Name   string
	Error  string `json:",omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks
	StatusCode int
}

type HealthCheckHandler func() (err error, ok bool)

type namedChecker struct {
	name    string
	handler HealthCheckHandler
}

func NewHealthCheckServer() *HealthCheckServer {
	return &HealthCheckServer{}
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.lock.Lock()
	server.Checkers = append(server.Checkers, namedChecker{name, handler})
	server.lock.Unlock()
}

func (server *HealthCheckServer) run() HealthCheckHttpResponse {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0),
		StatusCode: http.StatusOK,
	}

	server.lock.RLock()
	defer server.lock.RUnlock()

	for _, checker := range server.Checkers {
		err, checkerRes := checker.handler()

		check := HealthChecks{
			Name:   checker.name,
			Status: err == nil && checkerRes,
		}

		if err != nil {
			check.Error = err.Error()
		}

		if !check.Status {
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, check)
	}

	return res
}

func (server *HealthCheckServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := server.run()

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}
