package variants

import (
	"ecomshop_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchVariantsByProduct handles GET /api/variants/{productId}. A product
// without variants returns an empty list.
func (vrm *VariantRoutesManager) FetchVariantsByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		gecho.BadRequest(w, gecho.WithMessage("Product ID is required"), gecho.Send())
		return
	}

	variants, err := vrm.variantService.GetByProduct(r.Context(), productID)
	if err != nil {
		handling.HandleError(err, "Failed to fetch variants", vrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"variants": variants,
			"count":    len(variants),
		}),
		gecho.Send(),
	)
}
