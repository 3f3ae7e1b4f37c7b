package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for outgoing backend calls.
type Metrics struct {
	mu        sync.Mutex
	callCount map[string]int64
	errCount  map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		callCount: make(map[string]int64),
		errCount:  make(map[string]int64),
	}
}

// RecordCall increments counters for completed calls.
func (m *Metrics) RecordCall(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := callKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errCount[key]++
}

// CallCount returns the recorded count for a path/method/status triple.
func (m *Metrics) CallCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount[callKey(path, method, status)]
}

func callKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
