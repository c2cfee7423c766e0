// Package reference serves static lookup data for the storefront,
// currently the list of Algerian wilayas and their communes.
package reference

import (
	_ "embed"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

//go:embed wilayas.json
var wilayasJSON []byte

type ReferenceRoutesManager struct {
	logger *gecho.Logger
}

func NewReferenceRoutesManager(logger *gecho.Logger) *ReferenceRoutesManager {
	return &ReferenceRoutesManager{
		logger: logger,
	}
}

func (rrm *ReferenceRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/api/wilayas", rrm.FetchWilayas)
}

// FetchWilayas handles GET /api/wilayas. The dataset is compiled into the
// binary and served verbatim.
func (rrm *ReferenceRoutesManager) FetchWilayas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(wilayasJSON)
}
