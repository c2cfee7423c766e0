package orders

import (
	"ecomshop_server/api/health"
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /api/orders. This is the storefront checkout
// endpoint and requires no authentication.
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid order payload", orm.logger, w)
		return
	}

	order, err := orm.orderService.Create(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "Failed to create order", orm.logger, w)
		return
	}

	health.OrdersSubmitted.Inc()
	orm.logger.Info("Order submitted",
		gecho.Field("id", order.ID),
		gecho.Field("product_id", order.ProductID),
	)
	lib.Created(w, "Order created", map[string]any{"order": order})
}
