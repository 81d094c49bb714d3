package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AlliediMpact/coinbox-go/client/internal/api"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coinbox_client",
			Name:      "requests_total",
			Help:      "Requests dispatched to the Coin Box API by outcome.",
		},
		[]string{"method", "route", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coinbox_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of Coin Box API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func recordRequest(done api.Completion) {
	requestsTotal.WithLabelValues(done.Method, done.Route, string(done.Outcome)).Inc()
	requestDuration.WithLabelValues(done.Method, done.Route).Observe(done.Elapsed.Seconds())
}
