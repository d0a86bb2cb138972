package metrics

import (
	"sync"

	"go.opentelemetry.io/otel/metric"
)

type gauge struct {
	mu    sync.Mutex
	value float64
	isSet bool
}

func (g *gauge) set(v float64) {
	g.mu.Lock()
	g.value, g.isSet = v, true
	g.mu.Unlock()
}

func (g *gauge) get() (float64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.value, g.isSet
}

// store keeps registered instruments by name. Registering a name twice within one kind is an error.
type store struct {
	mu            *sync.RWMutex
	counter       map[string]metric.Int64Counter
	upDownCounter map[string]metric.Float64UpDownCounter
	histogram     map[string]metric.Float64Histogram
	gauge         map[string]*gauge
}

func newStore() store {
	return store{
		mu:            &sync.RWMutex{},
		counter:       make(map[string]metric.Int64Counter),
		upDownCounter: make(map[string]metric.Float64UpDownCounter),
		histogram:     make(map[string]metric.Float64Histogram),
		gauge:         make(map[string]*gauge),
	}
}

func get[T any](s store, m map[string]T, name string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := m[name]
	if !ok {
		var zero T

		return zero, metricsNotRegistered{metricsName: name}
	}

	return v, nil
}

func set[T any](s store, m map[string]T, name string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := m[name]; ok {
		return metricsAlreadyRegistered{metricsName: name}
	}

	m[name] = v

	return nil
}

func (s store) getCounter(name string) (metric.Int64Counter, error) {
	return get(s, s.counter, name)
}

func (s store) getUpDownCounter(name string) (metric.Float64UpDownCounter, error) {
	return get(s, s.upDownCounter, name)
}

func (s store) getHistogram(name string) (metric.Float64Histogram, error) {
	return get(s, s.histogram, name)
}

func (s store) getGauge(name string) (*gauge, error) {
	return get(s, s.gauge, name)
}

func (s store) setCounter(name string, m metric.Int64Counter) error {
	return set(s, s.counter, name, m)
}

func (s store) setUpDownCounter(name string, m metric.Float64UpDownCounter) error {
	return set(s, s.upDownCounter, name, m)
}

func (s store) setHistogram(name string, m metric.Float64Histogram) error {
	return set(s, s.histogram, name, m)
}

func (s store) setGauge(name string, g *gauge) error {
	return set(s, s.gauge, name, g)
}
