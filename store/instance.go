package store

import (
	"ecomshop_server/structs"
	"fmt"
	"log"

	"github.com/MonkyMars/gecho"
)

var instance Store

// Initialize selects the backing store from configuration: Postgres when a
// database URL is set, the in-memory mock store otherwise. The choice is
// made once and never revisited at runtime.
func Initialize(cfg *structs.Config, logger *gecho.Logger) error {
	if cfg.Database.URL == "" {
		logger.Warn("No DATABASE_URL configured, running in mock mode with in-memory storage")
		instance = NewMemory()
		return nil
	}

	st, err := NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	logger.Info("Connected to document store", gecho.Field("mode", st.Mode()))
	instance = st
	return nil
}

// GetInstance returns the global store instance.
func GetInstance() Store {
	if instance == nil {
		log.Fatal("Store instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// CloseInstance closes the global store instance.
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}
