package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/store"
	"ecomshop_server/structs"
)

func TestSettingsGetFallsBackToDefaults(t *testing.T) {
	ss := NewSettingsService(testLogger(), store.NewMemoryEmpty())

	settings, err := ss.Get(context.Background())
	require.NoError(t, err)

	defaults := structs.DefaultSettings()
	assert.Equal(t, defaults.StoreName, settings.StoreName)
	assert.Equal(t, defaults.OutOfStockMessage, settings.OutOfStockMessage)
	assert.Equal(t, defaults.OutOfStockMessageFr, settings.OutOfStockMessageFr)
}

func TestSettingsUpdateMerges(t *testing.T) {
	ss := NewSettingsService(testLogger(), store.NewMemoryEmpty())
	ctx := context.Background()

	name := "متجري"
	first, err := ss.Update(ctx, &structs.UpdateSettingsRequest{StoreName: &name})
	require.NoError(t, err)
	assert.Equal(t, "متجري", first.StoreName)

	msg := "Rupture de stock"
	second, err := ss.Update(ctx, &structs.UpdateSettingsRequest{OutOfStockMessageFr: &msg})
	require.NoError(t, err)

	assert.Equal(t, "Rupture de stock", second.OutOfStockMessageFr)
	assert.Equal(t, "متجري", second.StoreName, "earlier fields survive later partial updates")
}

func TestSettingsUpdateCreatesSingleton(t *testing.T) {
	st := store.NewMemoryEmpty()
	ss := NewSettingsService(testLogger(), st)
	ctx := context.Background()

	name := "Shop"
	_, err := ss.Update(ctx, &structs.UpdateSettingsRequest{StoreName: &name})
	require.NoError(t, err)

	doc, err := st.Collection(store.Settings).GetByID(ctx, store.SettingsKey)
	require.NoError(t, err)
	assert.Equal(t, "Shop", doc["storeName"])
}
