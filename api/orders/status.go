package orders

import (
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UpdateOrderStatus handles PUT /api/orders/{id}/status
func (orm *OrderRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order ID is required"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid status payload", orm.logger, w)
		return
	}

	order, err := orm.orderService.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		handling.HandleError(err, "Failed to update order status", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(map[string]any{"order": order}),
		gecho.Send(),
	)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order ID is required"), gecho.Send())
		return
	}

	if err := orm.orderService.Delete(r.Context(), id); err != nil {
		handling.HandleError(err, "Failed to delete order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}
