// Package metrics owns the process Prometheus registry and the service collectors
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inspectgrade"

// Prediction outcomes
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeFallback = "fallback"
	OutcomeNoModel  = "no_model"
)

var (
	// Predictions counts scoring attempts by schema, outcome and grade letter
	Predictions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total prediction attempts by schema, outcome and grade",
	}, []string{"schema", "outcome", "grade"})

	// Scores observes predicted inspection scores
	Scores = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_score",
		Help:      "Distribution of predicted inspection scores",
		Buckets:   []float64{0, 5, 10, 13, 20, 27, 35, 50, 75, 100},
	}, []string{"schema"})

	// CacheLookups counts score cache hits and misses
	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_cache_lookups_total",
		Help:      "Score cache lookups by result",
	}, []string{"result"})

	// ModelLoaded is 1 when a model artifact is loaded for the schema label
	ModelLoaded = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_loaded",
		Help:      "Whether a model artifact is loaded (1) or absent (0)",
	}, []string{"schema"})

	// RequestDuration observes HTTP handler latency by route pattern
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

var (
	registry = prometheus.NewRegistry()
	initOnce sync.Once
)

// Init registers the collectors. Safe to call more than once
func Init() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			Predictions,
			Scores,
			CacheLookups,
			ModelLoaded,
			RequestDuration,
		)
	})
}

// Registry returns the process registry
func Registry() *prometheus.Registry { return registry }

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// RecordPrediction counts one attempt; score is observed only for graded outcomes
func RecordPrediction(schema, outcome, grade string, score float64) {
	Predictions.WithLabelValues(schema, outcome, grade).Inc()
	if outcome == OutcomeOK || outcome == OutcomeFallback {
		Scores.WithLabelValues(schema).Observe(score)
	}
}

// RecordCache counts a cache lookup
func RecordCache(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}

// SetModelLoaded flips the model gauge for schema
func SetModelLoaded(schema string, loaded bool) {
	v := 0.0
	if loaded {
		v = 1
	}
	ModelLoaded.WithLabelValues(schema).Set(v)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// Middleware observes request latency labelled by the chi route pattern
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		RequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}
