package services

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/store"
	"ecomshop_server/structs"
	"fmt"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

type ProductService struct {
	logger *gecho.Logger
	store  store.Store
}

func NewProductService(logger *gecho.Logger, st store.Store) *ProductService {
	return &ProductService{
		logger: logger,
		store:  st,
	}
}

func (ps *ProductService) GetAll(ctx context.Context) ([]structs.Product, error) {
	docs, err := ps.store.Collection(store.Products).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return store.DecodeAll[structs.Product](docs)
}

func (ps *ProductService) GetByID(ctx context.Context, id string) (*structs.Product, error) {
	doc, err := ps.store.Collection(store.Products).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var product structs.Product
	if err := store.Decode(doc, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (ps *ProductService) Create(ctx context.Context, req *structs.CreateProductRequest) (*structs.Product, error) {
	if req.Price < 0 {
		return nil, &lib.ValidationError{Errors: []lib.FieldError{
			{Field: "price", Message: "must be greater than or equal to 0"},
		}}
	}

	now := time.Now()
	product := structs.Product{
		Name:      strings.TrimSpace(req.Name),
		NameFr:    strings.TrimSpace(req.NameFr),
		Price:     req.Price.Float64(),
		MainImage: req.MainImage,
		InStock:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	doc, err := store.ToDocument(product)
	if err != nil {
		return nil, err
	}

	id, err := ps.store.Collection(store.Products).Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = id
	ps.logger.Info("Product created", gecho.Field("id", id), gecho.Field("name", product.Name))
	return &product, nil
}

func (ps *ProductService) Update(ctx context.Context, id string, req *structs.UpdateProductRequest) (*structs.Product, error) {
	patch := store.Document{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.NameFr != nil {
		patch["nameFr"] = *req.NameFr
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, &lib.ValidationError{Errors: []lib.FieldError{
				{Field: "price", Message: "must be greater than or equal to 0"},
			}}
		}
		patch["price"] = req.Price.Float64()
	}
	if req.MainImage != nil {
		patch["mainImage"] = *req.MainImage
	}
	if req.InStock != nil {
		patch["inStock"] = *req.InStock
	}

	if err := ps.store.Collection(store.Products).UpdateMerge(ctx, id, patch); err != nil {
		return nil, err
	}
	return ps.GetByID(ctx, id)
}

// Delete removes the product and then sweeps its variants. The two steps
// are not atomic: a crash in between leaves orphaned variants behind, an
// accepted risk at this system's scale.
func (ps *ProductService) Delete(ctx context.Context, id string) error {
	if err := ps.store.Collection(store.Products).Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	swept, err := ps.store.Collection(store.Variants).DeleteWhere(ctx, "productId", id)
	if err != nil {
		return fmt.Errorf("failed to sweep variants of product %s: %w", id, err)
	}

	ps.logger.Info("Product deleted",
		gecho.Field("id", id),
		gecho.Field("variants_swept", swept),
	)
	return nil
}
