package settings

import (
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchSettings handles GET /api/settings. Falls back to built-in
// defaults when nothing has been stored yet.
func (srm *SettingsRoutesManager) FetchSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := srm.settingsService.Get(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch settings", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"settings": settings}),
		gecho.Send(),
	)
}

// UpdateSettings handles PUT /api/settings with merge semantics: omitted
// fields keep their stored values.
func (srm *SettingsRoutesManager) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.UpdateSettingsRequest](r)
	if err != nil {
		handling.HandleError(err, "Invalid settings payload", srm.logger, w)
		return
	}

	settings, err := srm.settingsService.Update(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "Failed to update settings", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Settings updated"),
		gecho.WithData(map[string]any{"settings": settings}),
		gecho.Send(),
	)
}
