// Package metrics records counters, up/down counters, histograms and gauges through an otel meter.
package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Errors are logged rather than returned so that recording a metric never interrupts a query.

type Manager interface {
	NewCounter(name, desc string)
	NewUpDownCounter(name, desc string)
	NewHistogram(name, desc string, buckets ...float64)
	NewGauge(name, desc string)

	IncrementCounter(ctx context.Context, name string, labels ...string)
	DeltaUpDownCounter(ctx context.Context, name string, value float64, labels ...string)
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
	SetGauge(name string, value float64)
}

type Logger interface {
	Error(args ...any)
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
}

const cardinalityLimit = 20

type metricsManager struct {
	meter  metric.Meter
	store  store
	logger Logger
}

func NewMetricsManager(meter metric.Meter, logger Logger) Manager {
	return &metricsManager{
		meter:  meter,
		store:  newStore(),
		logger: logger,
	}
}

// NewCounter registers a monotonically increasing counter.
//
//	Usage: m.NewCounter("app_cassandra_errors", "Number of failed CASSANDRA operations.")
func (m *metricsManager) NewCounter(name, desc string) {
	counter, err := m.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		m.logger.Error(err)

		return
	}

	if err = m.store.setCounter(name, counter); err != nil {
		m.logger.Error(err)
	}
}

// NewUpDownCounter registers a counter that can go up and down.
func (m *metricsManager) NewUpDownCounter(name, desc string) {
	upDownCounter, err := m.meter.Float64UpDownCounter(name, metric.WithDescription(desc))
	if err != nil {
		m.logger.Error(err)

		return
	}

	if err = m.store.setUpDownCounter(name, upDownCounter); err != nil {
		m.logger.Error(err)
	}
}

// NewHistogram registers a histogram with explicit bucket boundaries.
//
//	Usage:
//	 m.NewHistogram("app_cassandra_stats", "Response time of CASSANDRA queries in milliseconds.", .05, .1, 1, 10)
//
// Each recorded value lands in the first bucket whose upper bound is not below it; values above the
// last boundary are counted in the implicit +Inf bucket.
func (m *metricsManager) NewHistogram(name, desc string, buckets ...float64) {
	histogram, err := m.meter.Float64Histogram(name, metric.WithDescription(desc),
		metric.WithExplicitBucketBoundaries(buckets...))
	if err != nil {
		m.logger.Error(err)

		return
	}

	if err = m.store.setHistogram(name, histogram); err != nil {
		m.logger.Error(err)
	}
}

// NewGauge registers a gauge that reports the last value passed to SetGauge.
func (m *metricsManager) NewGauge(name, desc string) {
	g := &gauge{}

	_, err := m.meter.Float64ObservableGauge(name, metric.WithDescription(desc),
		metric.WithFloat64Callback(func(_ context.Context, o metric.Float64Observer) error {
			if v, ok := g.get(); ok {
				o.Observe(v)
			}

			return nil
		}))
	if err != nil {
		m.logger.Error(err)

		return
	}

	if err = m.store.setGauge(name, g); err != nil {
		m.logger.Error(err)
	}
}

// IncrementCounter increases the named counter by 1. Labels are alternating key and value strings.
//
//	Usage:
//	 m.IncrementCounter(ctx, "app_cassandra_errors", "operation", "execute")
func (m *metricsManager) IncrementCounter(ctx context.Context, name string, labels ...string) {
	counter, err := m.store.getCounter(name)
	if err != nil {
		m.logger.Error(err)

		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(m.getAttributes(name, labels...)...))
}

// DeltaUpDownCounter adds value, which may be negative, to the named up/down counter.
func (m *metricsManager) DeltaUpDownCounter(ctx context.Context, name string, value float64, labels ...string) {
	upDownCounter, err := m.store.getUpDownCounter(name)
	if err != nil {
		m.logger.Error(err)

		return
	}

	upDownCounter.Add(ctx, value, metric.WithAttributes(m.getAttributes(name, labels...)...))
}

// RecordHistogram records value in the named histogram.
func (m *metricsManager) RecordHistogram(ctx context.Context, name string, value float64, labels ...string) {
	histogram, err := m.store.getHistogram(name)
	if err != nil {
		m.logger.Error(err)

		return
	}

	histogram.Record(ctx, value, metric.WithAttributes(m.getAttributes(name, labels...)...))
}

// SetGauge sets the value the named gauge reports on the next collection.
func (m *metricsManager) SetGauge(name string, value float64) {
	g, err := m.store.getGauge(name)
	if err != nil {
		m.logger.Error(err)

		return
	}

	g.set(value)
}

// getAttributes converts alternating key/value labels into otel attributes. A trailing key without a
// value is dropped.
func (m *metricsManager) getAttributes(name string, labels ...string) []attribute.KeyValue {
	labelsCount := len(labels)
	if labelsCount%2 != 0 {
		m.logger.Warnf("metrics %v label has invalid key-value pairs", name)
	}

	if labelsCount > cardinalityLimit {
		m.logger.Warnf("metrics %v has high cardinality: %v", name, labelsCount)
	}

	attributes := make([]attribute.KeyValue, 0, labelsCount/2)

	for i := 0; i < labelsCount-1; i += 2 {
		attributes = append(attributes, attribute.String(labels[i], labels[i+1]))
	}

	return attributes
}
