package services

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/store"
	"ecomshop_server/structs"
	"errors"
	"fmt"

	"github.com/MonkyMars/gecho"
)

type SettingsService struct {
	logger *gecho.Logger
	store  store.Store
}

func NewSettingsService(logger *gecho.Logger, st store.Store) *SettingsService {
	return &SettingsService{
		logger: logger,
		store:  st,
	}
}

// Get returns the storefront settings document. When none has ever been
// written the compiled-in defaults are returned instead of an error, so
// reads never fail on a fresh deployment.
func (ss *SettingsService) Get(ctx context.Context) (*structs.Settings, error) {
	doc, err := ss.store.Collection(store.Settings).GetByID(ctx, store.SettingsKey)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			defaults := structs.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	var settings structs.Settings
	if err := store.Decode(doc, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update merges the supplied fields into the settings document, creating
// it from the patch when it does not exist yet. Omitted fields keep their
// stored values.
func (ss *SettingsService) Update(ctx context.Context, req *structs.UpdateSettingsRequest) (*structs.Settings, error) {
	patch := store.Document{}
	if req.StoreName != nil {
		patch["storeName"] = *req.StoreName
	}
	if req.StoreNameFr != nil {
		patch["storeNameFr"] = *req.StoreNameFr
	}
	if req.OutOfStockMessage != nil {
		patch["outOfStockMessage"] = *req.OutOfStockMessage
	}
	if req.OutOfStockMessageFr != nil {
		patch["outOfStockMessageFr"] = *req.OutOfStockMessageFr
	}

	if err := ss.store.Collection(store.Settings).Set(ctx, store.SettingsKey, patch, true); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	ss.logger.Info("Settings updated", gecho.Field("fields", len(patch)))
	return ss.Get(ctx)
}
