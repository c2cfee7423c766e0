package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/lib"
)

func TestMemoryCreateAndGetByID(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection(Products)

	id, err := col.Create(ctx, Document{"name": "Clock", "price": 25.0})
	require.NoError(t, err)
	assert.Contains(t, id, "product-")

	doc, err := col.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Clock", doc["name"])
	assert.Equal(t, id, doc["id"])
}

func TestMemoryGetByIDMissing(t *testing.T) {
	st := NewMemoryEmpty()
	_, err := st.Collection(Products).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestMemoryUpdateMerge(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection(Products)

	id, err := col.Create(ctx, Document{"name": "Clock", "inStock": true})
	require.NoError(t, err)

	err = col.UpdateMerge(ctx, id, Document{"inStock": false})
	require.NoError(t, err)

	doc, err := col.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, false, doc["inStock"])
	assert.Equal(t, "Clock", doc["name"], "untouched fields survive a merge")

	err = col.UpdateMerge(ctx, "missing", Document{"inStock": false})
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestMemorySetMergeSemantics(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection(Settings)

	// Set on a missing id creates the document
	err := col.Set(ctx, SettingsKey, Document{"storeName": "Shop"}, true)
	require.NoError(t, err)

	// Merge keeps existing fields
	err = col.Set(ctx, SettingsKey, Document{"storeNameFr": "Boutique"}, true)
	require.NoError(t, err)

	doc, err := col.GetByID(ctx, SettingsKey)
	require.NoError(t, err)
	assert.Equal(t, "Shop", doc["storeName"])
	assert.Equal(t, "Boutique", doc["storeNameFr"])

	// Overwrite drops fields not in the new document
	err = col.Set(ctx, SettingsKey, Document{"storeName": "Other"}, false)
	require.NoError(t, err)

	doc, err = col.GetByID(ctx, SettingsKey)
	require.NoError(t, err)
	assert.Equal(t, "Other", doc["storeName"])
	assert.NotContains(t, doc, "storeNameFr")
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection(Orders)

	id, err := col.Create(ctx, Document{"status": "pending"})
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, id))
	require.NoError(t, col.Delete(ctx, id), "deleting a missing document is not an error")
}

func TestMemoryWhereAndDeleteWhere(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection(Variants)

	for range 3 {
		_, err := col.Create(ctx, Document{"productId": "p1"})
		require.NoError(t, err)
	}
	_, err := col.Create(ctx, Document{"productId": "p2"})
	require.NoError(t, err)

	docs, err := col.Where(ctx, "productId", "p1")
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	docs, err = col.Where(ctx, "productId", "unknown")
	require.NoError(t, err)
	assert.Empty(t, docs)

	deleted, err := col.DeleteWhere(ctx, "productId", "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	remaining, err := col.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestMemoryGetAllOrderedByTimestamp(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection(Orders)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		_, err := col.Create(ctx, Document{
			"seq":       float64(i),
			"createdAt": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	docs, err := col.GetAllOrdered(ctx, "createdAt", true)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, float64(2), docs[0]["seq"], "newest first")
	assert.Equal(t, float64(0), docs[2]["seq"])

	docs, err = col.GetAllOrdered(ctx, "createdAt", false)
	require.NoError(t, err)
	assert.Equal(t, float64(0), docs[0]["seq"], "oldest first")
}

func TestMemorySeedData(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	settings, err := st.Collection(Settings).GetByID(ctx, SettingsKey)
	require.NoError(t, err)
	assert.NotEmpty(t, settings["storeName"])

	product, err := st.Collection(Products).GetByID(ctx, "product-1")
	require.NoError(t, err)
	assert.Equal(t, true, product["inStock"])

	variants, err := st.Collection(Variants).Where(ctx, "productId", "product-1")
	require.NoError(t, err)
	assert.Len(t, variants, 3)
}

// Reads on a collection that was never written must not touch the backing
// maps; only writes may create one.
func TestMemoryUnknownCollectionReadsDoNotAllocate(t *testing.T) {
	st := NewMemoryEmpty()
	ctx := context.Background()
	col := st.Collection("drafts")

	docs, err := col.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = col.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, lib.ErrNotFound)

	docs, err = col.Where(ctx, "name", "x")
	require.NoError(t, err)
	assert.Empty(t, docs)

	ms := st.(*memoryStore)
	ms.mu.RLock()
	_, exists := ms.data["drafts"]
	ms.mu.RUnlock()
	assert.False(t, exists, "read paths must not create collections")

	id, err := col.Create(ctx, Document{"name": "x"})
	require.NoError(t, err)

	doc, err := col.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "x", doc["name"])
}
