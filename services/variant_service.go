package services

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/store"
	"ecomshop_server/structs"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

type VariantService struct {
	logger *gecho.Logger
	store  store.Store
}

func NewVariantService(logger *gecho.Logger, st store.Store) *VariantService {
	return &VariantService{
		logger: logger,
		store:  st,
	}
}

// GetByProduct lists the variants attached to one product. A product with
// no variants yields an empty slice, not an error.
func (vs *VariantService) GetByProduct(ctx context.Context, productID string) ([]structs.Variant, error) {
	docs, err := vs.store.Collection(store.Variants).Where(ctx, "productId", productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch variants: %w", err)
	}
	return store.DecodeAll[structs.Variant](docs)
}

func (vs *VariantService) GetByID(ctx context.Context, id string) (*structs.Variant, error) {
	doc, err := vs.store.Collection(store.Variants).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var variant structs.Variant
	if err := store.Decode(doc, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (vs *VariantService) Create(ctx context.Context, req *structs.CreateVariantRequest) (*structs.Variant, error) {
	productID := strings.TrimSpace(req.ProductID)

	// Reject variants pointing at products that do not exist.
	if _, err := vs.store.Collection(store.Products).GetByID(ctx, productID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return nil, &lib.ValidationError{Errors: []lib.FieldError{
				{Field: "productId", Message: "references a product that does not exist"},
			}}
		}
		return nil, err
	}

	variant := structs.Variant{
		ProductID: productID,
		Name:      strings.TrimSpace(req.Name),
		NameFr:    strings.TrimSpace(req.NameFr),
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}

	doc, err := store.ToDocument(variant)
	if err != nil {
		return nil, err
	}

	id, err := vs.store.Collection(store.Variants).Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}

	variant.ID = id
	vs.logger.Info("Variant created", gecho.Field("id", id), gecho.Field("product_id", productID))
	return &variant, nil
}

func (vs *VariantService) Update(ctx context.Context, id string, req *structs.UpdateVariantRequest) (*structs.Variant, error) {
	patch := store.Document{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.NameFr != nil {
		patch["nameFr"] = *req.NameFr
	}
	if req.ImageURL != nil {
		patch["imageUrl"] = *req.ImageURL
	}

	if err := vs.store.Collection(store.Variants).UpdateMerge(ctx, id, patch); err != nil {
		return nil, err
	}
	return vs.GetByID(ctx, id)
}

func (vs *VariantService) Delete(ctx context.Context, id string) error {
	if err := vs.store.Collection(store.Variants).Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	vs.logger.Info("Variant deleted", gecho.Field("id", id))
	return nil
}
