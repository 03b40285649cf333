package influxdb

import (
	"sync/atomic"
)

// Counter counts events between two metric reports, and since it was created.
type Counter struct {
	count int64
	total int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (counter *Counter) Add(nbr int) {
	atomic.AddInt64(&counter.count, int64(nbr))
	atomic.AddInt64(&counter.total, int64(nbr))
}

// GetAndReset returns the count since the last call.
func (counter *Counter) GetAndReset() int {
	return int(atomic.SwapInt64(&counter.count, 0))
}

func (counter *Counter) Total() int {
	return int(atomic.LoadInt64(&counter.total))
}
