// Copyright (c) 2026 Kinotek. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus instrumentation for the HTTP surface and
the database pool.

It provides a middleware that records request counts, latencies, and in-flight
gauges, plus a collector that snapshots pgxpool connection statistics on scrape.
The /metrics handler is mounted by the api package.
*/
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the HTTP instruments so wiring stays explicit — no
// package-level mutable state, mirroring the constructor-injection style of
// the rest of the platform.
type Registry struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        *prometheus.GaugeVec
}

// NewRegistry creates and registers the HTTP instruments.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()

	m := &Registry{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of processed HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "In-flight requests by method and route",
		}, []string{"method", "path"}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.inflight)

	return m
}

// ObservePool registers a collector exposing pgxpool connection gauges.
func (m *Registry) ObservePool(pool *pgxpool.Pool) {
	m.registry.MustRegister(&poolCollector{
		pool:     pool,
		acquired: prometheus.NewDesc("pg_pool_acquired_conns", "Acquired pool connections", nil, nil),
		idle:     prometheus.NewDesc("pg_pool_idle_conns", "Idle pool connections", nil, nil),
		total:    prometheus.NewDesc("pg_pool_total_conns", "Total pool connections", nil, nil),
	})
}

// Handler returns the scrape endpoint for GET /metrics.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments every request with count, latency, and inflight metrics.
func (m *Registry) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			method := strings.ToUpper(request.Method)
			pathLabel := normalizePath(request.URL.Path)

			m.inflight.WithLabelValues(method, pathLabel).Inc()
			startTime := time.Now()

			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			defer func() {
				m.inflight.WithLabelValues(method, pathLabel).Dec()
				m.requestDuration.WithLabelValues(method, pathLabel).Observe(time.Since(startTime).Seconds())
				m.requestsTotal.WithLabelValues(method, pathLabel, strconv.Itoa(recorder.status)).Inc()
			}()

			next.ServeHTTP(recorder, request)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses numeric id segments so metric cardinality stays
// bounded: /films/42/like/7 → /films/:id/like/:id.
func normalizePath(path string) string {
	segments := strings.Split(path, "/")
	var out []string
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if _, err := strconv.Atoi(segment); err == nil {
			out = append(out, ":id")
			continue
		}
		out = append(out, segment)
	}
	if len(out) == 0 {
		return "/"
	}
	return "/" + strings.Join(out, "/")
}

// poolCollector snapshots pgxpool statistics at scrape time.
type poolCollector struct {
	pool     *pgxpool.Pool
	acquired *prometheus.Desc
	idle     *prometheus.Desc
	total    *prometheus.Desc
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	stat := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(stat.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(stat.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(stat.TotalConns()))
}
