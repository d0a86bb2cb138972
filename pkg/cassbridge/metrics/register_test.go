package metrics

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/logging"
	"github.com/cassbridge/cassbridge/pkg/cassbridge/metrics/exporters"
)

func newTestManager(t *testing.T, b *bytes.Buffer) (Manager, http.Handler) {
	t.Helper()

	meter, gatherer, err := exporters.Prometheus("testing-app", "v1.0.0")
	require.NoError(t, err)

	m := NewMetricsManager(meter, logging.NewMockLogger(logging.INFO, b))

	return m, GetHandler(m, gatherer)
}

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()

	server := httptest.NewServer(h)
	defer server.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/metrics", http.NoBody)
	require.NoError(t, err)

	resp, err := server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func Test_NewMetricsManagerSuccess(t *testing.T) {
	b := new(bytes.Buffer)
	m, h := newTestManager(t, b)
	ctx := context.Background()

	m.NewGauge("gauge_test", "this is metric to test gauge")
	m.NewCounter("counter_test", "this is metric to test counter")
	m.NewUpDownCounter("up_down_counter", "this is metric to test up-down-counter")
	m.NewHistogram("histogram_test", "this is metric to test histogram", 1, 5, 10)

	m.SetGauge("gauge_test", 50)
	m.IncrementCounter(ctx, "counter_test", "keyspace", "ks")
	m.DeltaUpDownCounter(ctx, "up_down_counter", 10)
	m.DeltaUpDownCounter(ctx, "up_down_counter", -4)
	m.RecordHistogram(ctx, "histogram_test", 3)

	body := scrape(t, h)

	testCases := []struct {
		desc    string
		pattern string
	}{
		{"counter help", `counter_test(_total)? this is metric to test counter`},
		{"counter value", `counter_test(_total)?\{[^}]*keyspace="ks"[^}]*\} 1`},
		{"gauge value", `gauge_test\{[^}]*\} 50`},
		{"up-down value", `up_down_counter\{[^}]*\} 6`},
		{"histogram bucket", `histogram_test_bucket\{[^}]*le="5"[^}]*\} 1`},
		{"histogram count", `histogram_test_count\{[^}]*\} 1`},
		{"runtime gauge", `app_go_routines\{[^}]*\} [0-9]+`},
	}

	for i, tc := range testCases {
		assert.Regexp(t, regexp.MustCompile(tc.pattern), body, "TEST[%d], Failed.\n%s", i, tc.desc)
	}

	assert.Empty(t, b.String())
}

func Test_NewMetricsManagerMetricsNotRegistered(t *testing.T) {
	b := new(bytes.Buffer)
	m, _ := newTestManager(t, b)
	ctx := context.Background()

	m.SetGauge("gauge-test", 50)
	m.IncrementCounter(ctx, "counter-test")
	m.DeltaUpDownCounter(ctx, "up-down-counter", 10)
	m.RecordHistogram(ctx, "histogram-test", 1)

	for _, name := range []string{"gauge-test", "counter-test", "up-down-counter", "histogram-test"} {
		assert.Contains(t, b.String(), "metrics "+name+" is not registered")
	}
}

func Test_NewMetricsManagerDuplicateRegistration(t *testing.T) {
	b := new(bytes.Buffer)
	m, _ := newTestManager(t, b)

	m.NewCounter("dup_counter", "first")
	m.NewCounter("dup_counter", "second")

	assert.Contains(t, b.String(), "metrics dup_counter already registered")
}

func Test_GetAttributes(t *testing.T) {
	b := new(bytes.Buffer)
	m := &metricsManager{logger: logging.NewMockLogger(logging.INFO, b)}

	attrs := m.getAttributes("odd", "hostname", "h1", "keyspace")

	require.Len(t, attrs, 1)
	assert.Equal(t, "hostname", string(attrs[0].Key))
	assert.Equal(t, "h1", attrs[0].Value.AsString())
	assert.Contains(t, b.String(), "metrics odd label has invalid key-value pairs")

	b.Reset()

	labels := make([]string, 0, 22)
	for i := 0; i < 11; i++ {
		labels = append(labels, "k", "v")
	}

	m.getAttributes("wide", labels...)
	assert.Contains(t, b.String(), "metrics wide has high cardinality: 22")
}
