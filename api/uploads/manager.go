package uploads

import (
	"ecomshop_server/api/middleware"
	"ecomshop_server/services"
	"ecomshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type UploadRoutesManager struct {
	logger        *gecho.Logger
	uploadService *services.UploadService
	cfg           *structs.Config
	mw            *middleware.Middleware
}

func NewUploadRoutesManager(
	logger *gecho.Logger,
	uploadService *services.UploadService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *UploadRoutesManager {
	return &UploadRoutesManager{
		logger:        logger,
		uploadService: uploadService,
		cfg:           cfg,
		mw:            mw,
	}
}

func (urm *UploadRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/upload", func(r chi.Router) {
		r.Use(urm.mw.RequireAuth)
		r.Post("/", urm.HandleUpload)
		r.Post("/multiple", urm.HandleMultiUpload)
	})
}
