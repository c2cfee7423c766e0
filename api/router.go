package api

import (
	"ecomshop_server/api/middleware"
	"ecomshop_server/config"
	"ecomshop_server/services"
	"ecomshop_server/store"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

// App wires the production router from the process-wide config, logger
// and store singletons.
func App() chi.Router {
	cfg := config.GetConfig()

	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	st := store.GetInstance()
	sm := services.NewServiceManager(standardLogger, cfg, st)

	return NewRouter(cfg, mwLogger, standardLogger, sm)
}

// NewRouter builds the full middleware and route stack from explicit
// dependencies. Tests construct it against an in-memory store.
func NewRouter(cfg *structs.Config, mwLogger, standardLogger *gecho.Logger, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	mw := middleware.NewMiddleware(cfg, mwLogger, sm.AuthService, sm.CacheService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit())
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// Throttling
	r.Use(mw.RateLimitMiddleware())

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	NewRouterManager(standardLogger, cfg, sm, mw).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the Ecom-Shop API"),
			gecho.Send(),
		)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
