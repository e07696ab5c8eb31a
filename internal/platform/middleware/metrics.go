// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests that matched no registered pattern,
// so 404 probes cannot grow label cardinality.
const unmatchedRoute = "unmatched"

// Metrics instruments HTTP traffic. Labels:
//
//   - method: HTTP verb
//   - route:  the registered chi pattern (e.g. /api/articles/{article_id})
//   - status: numeric status code as a string
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Inflight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Inflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_inflight",
				Help: "Current number of in-flight HTTP requests.",
			},
		),
	}
	registerer.MustRegister(metrics.Requests, metrics.Duration, metrics.Inflight)
	return metrics
}

// Middleware records one observation per request once routing has completed.
func (metrics *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		metrics.Inflight.Inc()
		defer metrics.Inflight.Dec()

		recorder := newResponseRecorder(writer)
		next.ServeHTTP(recorder, request)

		route := unmatchedRoute
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.Requests.WithLabelValues(request.Method, route, strconv.Itoa(recorder.status)).Inc()
		metrics.Duration.WithLabelValues(request.Method, route).Observe(time.Since(start).Seconds())
	})
}
