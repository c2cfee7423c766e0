package health

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ecomshop",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency per route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomshop",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests per route",
		},
		[]string{"method", "route", "status"},
	)

	// OrdersSubmitted counts orders accepted through the public checkout
	// endpoint, the business metric the dashboard cares about most.
	OrdersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ecomshop",
			Subsystem: "orders",
			Name:      "submitted_total",
			Help:      "Orders accepted through the public checkout endpoint",
		},
	)
)
