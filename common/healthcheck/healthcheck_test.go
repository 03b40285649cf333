package healthcheck

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthy(t *testing.T) {
	server := NewHealthCheckServer()
	server.Register("store", func() (error, bool) { return nil, true })

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res HealthCheckHttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []HealthChecks{{Status: true, Name: "store"}}, res.Checks)
}

func TestUnhealthy(t *testing.T) {
	server := NewHealthCheckServer()
	server.Register("store", func() (error, bool) { return nil, true })
	server.Register("workers", func() (error, bool) { return errors.New("no worker left"), false })
	server.Register("disk", func() (error, bool) { return nil, false })

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var res HealthCheckHttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Checks, 3)
	assert.Equal(t, "no worker left", res.Checks[1].Error)
	assert.False(t, res.Checks[2].Status)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
