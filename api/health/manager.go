package health

import (
	"ecomshop_server/services"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerMetricsOnce keeps repeated router construction (tests build the
// router per test case) from double-registering collectors.
var registerMetricsOnce sync.Once

type HealthRoutesManager struct {
	healthService *services.HealthService
}

func NewHealthRoutesManager(healthService *services.HealthService) *HealthRoutesManager {
	return &HealthRoutesManager{
		healthService: healthService,
	}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", hrm.GetHealth)
	r.Get("/api/health/server", hrm.GetServerHealth)
	r.Get("/api/health/store", hrm.GetStoreHealth)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(HttpDuration, HttpRequests, OrdersSubmitted)
	})
}
