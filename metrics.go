package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//**********************************************************
// metrics
//**********************************************************

var (
	http_requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citymap_http_requests_total",
		Help: "Handled http requests by method, path and status",
	}, []string{"method", "path", "status"})

	plan_duration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citymap_plan_duration_seconds",
		Help:    "Route planning duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	}, []string{"city"})

	plan_results = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citymap_plan_results_total",
		Help: "Planned routes by city and result",
	}, []string{"city", "result"})
)
