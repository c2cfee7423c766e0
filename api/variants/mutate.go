package variants

import (
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CreateVariant handles POST /api/variants
func (vrm *VariantRoutesManager) CreateVariant(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateVariantRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid variant payload", vrm.logger, w)
		return
	}

	variant, err := vrm.variantService.Create(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "Failed to create variant", vrm.logger, w)
		return
	}

	lib.Created(w, "Variant created", map[string]any{"variant": variant})
}

// UpdateVariant handles PUT /api/variants/{id}
func (vrm *VariantRoutesManager) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Variant ID is required"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateVariantRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid variant payload", vrm.logger, w)
		return
	}

	variant, err := vrm.variantService.Update(r.Context(), id, body)
	if err != nil {
		handling.HandleError(err, "Failed to update variant", vrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant updated"),
		gecho.WithData(map[string]any{"variant": variant}),
		gecho.Send(),
	)
}

// DeleteVariant handles DELETE /api/variants/{id}
func (vrm *VariantRoutesManager) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w, gecho.WithMessage("Variant ID is required"), gecho.Send())
		return
	}

	if err := vrm.variantService.Delete(r.Context(), id); err != nil {
		handling.HandleError(err, "Failed to delete variant", vrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant deleted"),
		gecho.Send(),
	)
}
