package products

import (
	"ecomshop_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// DeleteProduct handles DELETE /api/products/{id}. Deleting a product
// also removes every variant attached to it.
func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Product ID is required"), gecho.Send())
		return
	}

	if err := prm.productService.Delete(r.Context(), id); err != nil {
		handling.HandleError(err, "Failed to delete product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product and its variants deleted"),
		gecho.Send(),
	)
}
