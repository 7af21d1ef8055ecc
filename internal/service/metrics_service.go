package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP layer
// and the planning engine.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	enumerationsTotal    prometheus.Counter
	enumerationsCapped   prometheus.Counter
	combinationsReturned prometheus.Histogram
	recommendConflicts   prometheus.Histogram
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	enumerationsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_enumerations_total",
		Help: "Total combination enumerations executed",
	})

	enumerationsCapped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_enumerations_capped_total",
		Help: "Enumerations abandoned at the combination cap",
	})

	combinationsReturned := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_combinations_returned",
		Help:    "Conflict-free combinations returned per enumeration",
		Buckets: prometheus.ExponentialBuckets(1, 4, 6),
	})

	recommendConflicts := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_recommend_conflicts",
		Help:    "Residual conflicting events in recommended selections",
		Buckets: prometheus.LinearBuckets(0, 2, 8),
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		cacheHits,
		cacheMisses,
		enumerationsTotal,
		enumerationsCapped,
		combinationsReturned,
		recommendConflicts,
		goroutines,
	)

	return &MetricsService{
		registry:             registry,
		handler:              promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:      requestDuration,
		requestTotal:         requestTotal,
		cacheHits:            cacheHits,
		cacheMisses:          cacheMisses,
		enumerationsTotal:    enumerationsTotal,
		enumerationsCapped:   enumerationsCapped,
		combinationsReturned: combinationsReturned,
		recommendConflicts:   recommendConflicts,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, fmt.Sprintf("%d", status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func (s *MetricsService) RecordCacheLookup(hit bool) {
	if hit {
		s.cacheHits.Inc()
		return
	}
	s.cacheMisses.Inc()
}

// ObserveEnumeration records one enumeration run.
func (s *MetricsService) ObserveEnumeration(returned int, capped bool) {
	s.enumerationsTotal.Inc()
	s.combinationsReturned.Observe(float64(returned))
	if capped {
		s.enumerationsCapped.Inc()
	}
}

// ObserveRecommendation records the residual conflict count of a recommended
// selection.
func (s *MetricsService) ObserveRecommendation(conflicts int) {
	s.recommendConflicts.Observe(float64(conflicts))
}
