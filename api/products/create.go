package products

import (
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"
)

// CreateProduct handles POST /api/products
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid product payload", prm.logger, w)
		return
	}

	product, err := prm.productService.Create(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "Failed to create product", prm.logger, w)
		return
	}

	lib.Created(w, "Product created", map[string]any{"product": product})
}
