package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/lib"
	"ecomshop_server/store"
	"ecomshop_server/structs"
)

func newProductService(t *testing.T) (*ProductService, store.Store) {
	t.Helper()
	st := store.NewMemoryEmpty()
	return NewProductService(testLogger(), st), st
}

func TestProductCreateDefaults(t *testing.T) {
	ps, _ := newProductService(t)
	ctx := context.Background()

	product, err := ps.Create(ctx, &structs.CreateProductRequest{
		Name:   "  ساعة  ",
		NameFr: "Horloge",
		Price:  structs.JSONNumber(1500),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "ساعة", product.Name, "names are trimmed")
	assert.True(t, product.InStock, "products default to in stock")
	assert.False(t, product.CreatedAt.IsZero())

	fetched, err := ps.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, fetched.Price)
}

func TestProductCreateRejectsNegativePrice(t *testing.T) {
	ps, _ := newProductService(t)

	_, err := ps.Create(context.Background(), &structs.CreateProductRequest{
		Name:   "ساعة",
		NameFr: "Horloge",
		Price:  structs.JSONNumber(-5),
	})

	var ve *lib.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "price", ve.Errors[0].Field)
}

func TestProductUpdatePartial(t *testing.T) {
	ps, _ := newProductService(t)
	ctx := context.Background()

	product, err := ps.Create(ctx, &structs.CreateProductRequest{
		Name:   "ساعة",
		NameFr: "Horloge",
		Price:  structs.JSONNumber(1500),
	})
	require.NoError(t, err)

	inStock := false
	updated, err := ps.Update(ctx, product.ID, &structs.UpdateProductRequest{InStock: &inStock})
	require.NoError(t, err)

	assert.False(t, updated.InStock)
	assert.Equal(t, "ساعة", updated.Name, "omitted fields keep their values")
	assert.Equal(t, 1500.0, updated.Price)
}

func TestProductUpdateMissing(t *testing.T) {
	ps, _ := newProductService(t)

	name := "x"
	_, err := ps.Update(context.Background(), "nope", &structs.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestProductDeleteCascadesVariants(t *testing.T) {
	ps, st := newProductService(t)
	vs := NewVariantService(testLogger(), st)
	ctx := context.Background()

	product, err := ps.Create(ctx, &structs.CreateProductRequest{
		Name:   "ساعة",
		NameFr: "Horloge",
		Price:  structs.JSONNumber(1500),
	})
	require.NoError(t, err)

	other, err := ps.Create(ctx, &structs.CreateProductRequest{
		Name:   "خاتم",
		NameFr: "Bague",
		Price:  structs.JSONNumber(900),
	})
	require.NoError(t, err)

	for _, name := range []string{"أزرق", "أحمر"} {
		_, err := vs.Create(ctx, &structs.CreateVariantRequest{
			ProductID: product.ID,
			Name:      name,
			NameFr:    "Couleur",
			ImageURL:  "https://img.example/x.png",
		})
		require.NoError(t, err)
	}
	kept, err := vs.Create(ctx, &structs.CreateVariantRequest{
		ProductID: other.ID,
		Name:      "ذهبي",
		NameFr:    "Or",
		ImageURL:  "https://img.example/y.png",
	})
	require.NoError(t, err)

	require.NoError(t, ps.Delete(ctx, product.ID))

	_, err = ps.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, lib.ErrNotFound)

	orphans, err := vs.GetByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "variants of the deleted product are swept")

	remaining, err := vs.GetByProduct(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID, "other products keep their variants")
}
