// Package exporters builds otel meters backed by a metrics exporter.
package exporters

import (
	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricSdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/version"
)

// Prometheus returns a meter whose instruments are exposed through the returned gatherer.
// Every call uses its own registry, so meters never collide on instrument names.
func Prometheus(appName, appVersion string) (metric.Meter, promclient.Gatherer, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry), prometheus.WithoutTargetInfo())
	if err != nil {
		return nil, nil, err
	}

	meter := metricSdk.NewMeterProvider(
		metricSdk.WithReader(exporter),
		metricSdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(appName),
			attribute.String("cassbridge_version", version.Library),
		))).Meter(appName, metric.WithInstrumentationVersion(appVersion))

	return meter, registry, nil
}
