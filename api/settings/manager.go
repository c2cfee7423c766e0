package settings

import (
	"ecomshop_server/api/middleware"
	"ecomshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SettingsRoutesManager struct {
	logger          *gecho.Logger
	settingsService *services.SettingsService
	mw              *middleware.Middleware
}

func NewSettingsRoutesManager(
	logger *gecho.Logger,
	settingsService *services.SettingsService,
	mw *middleware.Middleware,
) *SettingsRoutesManager {
	return &SettingsRoutesManager{
		logger:          logger,
		settingsService: settingsService,
		mw:              mw,
	}
}

func (srm *SettingsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", srm.FetchSettings)

		r.Group(func(r chi.Router) {
			r.Use(srm.mw.RequireAuth)
			r.Put("/", srm.UpdateSettings)
		})
	})
}
