package products

import (
	"ecomshop_server/api/middleware"
	"ecomshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		// Public catalog reads; an admin identity is attached when the
		// dashboard sends its token along
		r.Group(func(r chi.Router) {
			r.Use(prm.mw.OptionalAuth)
			r.Get("/", prm.FetchAllProducts)
			r.Get("/{id}", prm.FetchProductByID)
		})

		// Catalog mutations require a bearer token
		r.Group(func(r chi.Router) {
			r.Use(prm.mw.RequireAuth)
			r.Post("/", prm.CreateProduct)
			r.Put("/{id}", prm.UpdateProduct)
			r.Delete("/{id}", prm.DeleteProduct)
		})
	})
}
