package api

import (
	"ecomshop_server/api/auth"
	"ecomshop_server/api/health"
	"ecomshop_server/api/middleware"
	"ecomshop_server/api/orders"
	"ecomshop_server/api/products"
	"ecomshop_server/api/reference"
	"ecomshop_server/api/settings"
	"ecomshop_server/api/uploads"
	"ecomshop_server/api/variants"
	"ecomshop_server/services"
	"ecomshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes      *auth.AuthRoutesManager
	productRoutes   *products.ProductRoutesManager
	variantRoutes   *variants.VariantRoutesManager
	orderRoutes     *orders.OrderRoutesManager
	settingsRoutes  *settings.SettingsRoutesManager
	uploadRoutes    *uploads.UploadRoutesManager
	referenceRoutes *reference.ReferenceRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		authRoutes:      auth.NewAuthRoutesManager(logger, sm.AuthService),
		productRoutes:   products.NewProductRoutesManager(logger, sm.ProductService, mw),
		variantRoutes:   variants.NewVariantRoutesManager(logger, sm.VariantService, mw),
		orderRoutes:     orders.NewOrderRoutesManager(logger, sm.OrderService, mw),
		settingsRoutes:  settings.NewSettingsRoutesManager(logger, sm.SettingsService, mw),
		uploadRoutes:    uploads.NewUploadRoutesManager(logger, sm.UploadService, cfg, mw),
		referenceRoutes: reference.NewReferenceRoutesManager(logger),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.variantRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.settingsRoutes.RegisterRoutes(r)
	rm.uploadRoutes.RegisterRoutes(r)
	rm.referenceRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
