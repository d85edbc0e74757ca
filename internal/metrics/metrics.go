package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// unmatchedRoute labels every request no registered pattern serves, so
// scanners cannot grow the label set.
const unmatchedRoute = "unmatched"

// Routes reports the pattern that serves r; *http.ServeMux satisfies it.
type Routes interface {
	Handler(r *http.Request) (h http.Handler, pattern string)
}

// Middleware labels requests by the pattern routes matched, without the
// method prefix: GET /api/cart/{id} is recorded as /api/cart/{id}.
func Middleware(routes Routes) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			start := time.Now()
			httpRequestsInFlight.Inc()

			rw := newResponseWriter(w)
			pathPattern := routeLabel(routes, r)

			defer func() {

				duration := time.Since(start)
				statusCodeStr := strconv.Itoa(rw.statusCode)

				httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
				httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
				httpRequestsInFlight.Dec()

			}()

			next.ServeHTTP(rw, r)

		})
	}
}

// routeLabel only trusts "METHOD /path" patterns for the request's method.
// Redirects for unclean paths report the requested path instead, and those
// are unmatched too.
func routeLabel(routes Routes, r *http.Request) string {
	_, pattern := routes.Handler(r)

	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return unmatchedRoute
	}

	if method != r.Method && !(method == http.MethodGet && r.Method == http.MethodHead) {
		return unmatchedRoute
	}

	return path
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
