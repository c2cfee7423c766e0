package orders

import (
	"ecomshop_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchAllOrders handles GET /api/orders, newest first.
func (orm *OrderRoutesManager) FetchAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := orm.orderService.GetAll(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch orders", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"count":  len(orders),
		}),
		gecho.Send(),
	)
}
