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

func TestVariantCreateRequiresExistingProduct(t *testing.T) {
	st := store.NewMemoryEmpty()
	vs := NewVariantService(testLogger(), st)

	_, err := vs.Create(context.Background(), &structs.CreateVariantRequest{
		ProductID: "ghost",
		Name:      "أزرق",
		NameFr:    "Bleu",
		ImageURL:  "https://img.example/b.png",
	})

	var ve *lib.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "productId", ve.Errors[0].Field)
}

func TestVariantCreateAndFetchByProduct(t *testing.T) {
	st := store.NewMemoryEmpty()
	ps := NewProductService(testLogger(), st)
	vs := NewVariantService(testLogger(), st)
	ctx := context.Background()

	product, err := ps.Create(ctx, &structs.CreateProductRequest{
		Name: "ساعة", NameFr: "Horloge", Price: structs.JSONNumber(100),
	})
	require.NoError(t, err)

	created, err := vs.Create(ctx, &structs.CreateVariantRequest{
		ProductID: product.ID,
		Name:      "أزرق",
		NameFr:    "Bleu",
		ImageURL:  "https://img.example/b.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	variants, err := vs.GetByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "Bleu", variants[0].NameFr)
}

func TestVariantUpdate(t *testing.T) {
	st := store.NewMemoryEmpty()
	ps := NewProductService(testLogger(), st)
	vs := NewVariantService(testLogger(), st)
	ctx := context.Background()

	product, err := ps.Create(ctx, &structs.CreateProductRequest{
		Name: "ساعة", NameFr: "Horloge", Price: structs.JSONNumber(100),
	})
	require.NoError(t, err)

	variant, err := vs.Create(ctx, &structs.CreateVariantRequest{
		ProductID: product.ID, Name: "أزرق", NameFr: "Bleu", ImageURL: "https://img.example/b.png",
	})
	require.NoError(t, err)

	nameFr := "Bleu Marine"
	updated, err := vs.Update(ctx, variant.ID, &structs.UpdateVariantRequest{NameFr: &nameFr})
	require.NoError(t, err)
	assert.Equal(t, "Bleu Marine", updated.NameFr)
	assert.Equal(t, "أزرق", updated.Name)
}
