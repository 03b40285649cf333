package influxdb_test

import (
	"sync"
	"testing"

	"github.com/bytearena/visgraph/common/influxdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	counter.Add(1)

	assert.Equal(t, 1, counter.GetAndReset())
	assert.Equal(t, 0, counter.GetAndReset())

	counter.Add(3)
	assert.Equal(t, 3, counter.GetAndReset())
	assert.Equal(t, 4, counter.Total())
}

func TestAddConcurrently(t *testing.T) {
	counter := influxdb.NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Add(2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, counter.GetAndReset())
	assert.Equal(t, 200, counter.Total())
}

func TestStubClient(t *testing.T) {
	c, err := influxdb.NewClient("visgraph-test")
	require.NoError(t, err)
	defer c.TearDown()

	if !c.IsStub() {
		t.Skip("INFLUXDB_ADDR is set")
	}

	assert.NoError(t, c.WriteAppMetric("graphs", map[string]interface{}{"computed": 3, "vertices": 12}))
}
