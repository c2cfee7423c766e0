package products

import (
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UpdateProduct handles PUT /api/products/{id}
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Product ID is required"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid product payload", prm.logger, w)
		return
	}

	product, err := prm.productService.Update(r.Context(), id, body)
	if err != nil {
		handling.HandleError(err, "Failed to update product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
