package variants

import (
	"ecomshop_server/api/middleware"
	"ecomshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type VariantRoutesManager struct {
	logger         *gecho.Logger
	variantService *services.VariantService
	mw             *middleware.Middleware
}

func NewVariantRoutesManager(
	logger *gecho.Logger,
	variantService *services.VariantService,
	mw *middleware.Middleware,
) *VariantRoutesManager {
	return &VariantRoutesManager{
		logger:         logger,
		variantService: variantService,
		mw:             mw,
	}
}

func (vrm *VariantRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/variants", func(r chi.Router) {
		// Public: variants of one product
		r.Get("/{productId}", vrm.FetchVariantsByProduct)

		r.Group(func(r chi.Router) {
			r.Use(vrm.mw.RequireAuth)
			r.Post("/", vrm.CreateVariant)
			r.Put("/{id}", vrm.UpdateVariant)
			r.Delete("/{id}", vrm.DeleteVariant)
		})
	})
}
