package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/structs"
)

func TestDocumentRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	product := structs.Product{
		ID:        "product-1",
		Name:      "ساعة",
		NameFr:    "Horloge",
		Price:     1999.99,
		InStock:   true,
		CreatedAt: created,
		UpdatedAt: created,
	}

	doc, err := ToDocument(product)
	require.NoError(t, err)
	assert.Equal(t, "Horloge", doc["nameFr"])
	assert.Equal(t, 1999.99, doc["price"])

	var decoded structs.Product
	require.NoError(t, Decode(doc, &decoded))
	assert.Equal(t, product, decoded)
}

func TestDecodeAll(t *testing.T) {
	docs := []Document{
		{"id": "variant-1", "productId": "p1", "name": "a"},
		{"id": "variant-2", "productId": "p1", "name": "b"},
	}

	variants, err := DecodeAll[structs.Variant](docs)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "variant-1", variants[0].ID)
	assert.Equal(t, "p1", variants[1].ProductID)
}
