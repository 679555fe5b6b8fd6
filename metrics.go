package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//**********************************************************
// metrics
//**********************************************************

type Metrics struct {
	registry *prometheus.Registry

	RouteRequests *prometheus.CounterVec
	GraphBuilds   prometheus.Histogram
	CacheLookups  *prometheus.CounterVec
	Uploads       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	route_requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landmark_routing_route_requests_total",
			Help: "Routing requests by outcome",
		},
		[]string{"outcome"},
	)
	graph_builds := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "landmark_routing_graph_build_seconds",
			Help:    "Time spent parsing a dataset and building its graph",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
	)
	cache_lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landmark_routing_graph_cache_lookups_total",
			Help: "Graph cache lookups by result",
		},
		[]string{"result"},
	)
	uploads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landmark_routing_uploads_total",
			Help: "Dataset uploads by outcome",
		},
		[]string{"outcome"},
	)

	registry.MustRegister(
		route_requests,
		graph_builds,
		cache_lookups,
		uploads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:      registry,
		RouteRequests: route_requests,
		GraphBuilds:   graph_builds,
		CacheLookups:  cache_lookups,
		Uploads:       uploads,
	}
}

func (self *Metrics) ObserveGraphBuild(start time.Time) {
	self.GraphBuilds.Observe(time.Since(start).Seconds())
}

func (self *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(self.registry, promhttp.HandlerOpts{})
}
