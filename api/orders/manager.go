package orders

import (
	"ecomshop_server/api/middleware"
	"ecomshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		// Storefront checkout: anyone can submit an order
		r.Post("/", orm.CreateOrder)

		// The ledger itself is admin-only
		r.Group(func(r chi.Router) {
			r.Use(orm.mw.RequireAuth)
			r.Get("/", orm.FetchAllOrders)
			r.Put("/{id}/status", orm.UpdateOrderStatus)
			r.Delete("/{id}", orm.DeleteOrder)
		})
	})
}
