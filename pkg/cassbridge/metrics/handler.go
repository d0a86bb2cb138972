package metrics

import (
	"net/http"
	"runtime"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	goRoutines     = "app_go_routines"
	sysMemoryAlloc = "app_sys_memory_alloc"
	goNumGC        = "app_go_numGC"
)

// GetHandler serves the metrics collected by gatherer on GET /metrics. Runtime gauges are registered
// on m and refreshed on every scrape.
func GetHandler(m Manager, gatherer prometheus.Gatherer) http.Handler {
	router := mux.NewRouter()

	m.NewGauge(goRoutines, "Number of Go routines running.")
	m.NewGauge(sysMemoryAlloc, "Number of bytes allocated for heap objects.")
	m.NewGauge(goNumGC, "Number of completed Garbage Collector cycles.")

	h := systemMetricsHandler(m, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.NewRoute().Methods(http.MethodGet).Path("/metrics").Handler(h)

	return router
}

func systemMetricsHandler(m Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var stats runtime.MemStats

		runtime.ReadMemStats(&stats)

		m.SetGauge(goRoutines, float64(runtime.NumGoroutine()))
		m.SetGauge(sysMemoryAlloc, float64(stats.Alloc))
		m.SetGauge(goNumGC, float64(stats.NumGC))

		next.ServeHTTP(w, r)
	})
}
