package main

import (
	"errors"
	"net/http"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/ordering"
	"github.com/Skyedown/pohoda-skalite/internal/service"
)

// getAdminSettingsHandler godoc
//
//	@Summary		Get admin override settings
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	domain.AdminOverride
//	@Router			/admin-settings [get]
func (app *application) getAdminSettingsHandler(w http.ResponseWriter, r *http.Request) {
	override := app.adminService.Get(r.Context())

	if err := app.jsonRespone(w, http.StatusOK, override); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateAdminSettingsRequest struct {
	Mode            string `json:"mode" validate:"required,oneof=off disabled waitTime customNote"`
	WaitTimeMinutes int    `json:"waitTimeMinutes" validate:"min=0"`
	CustomNote      string `json:"customNote" validate:"max=500"`
}

// updateAdminSettingsHandler godoc
//
//	@Summary		Update admin override settings
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateAdminSettingsRequest	true	"Override settings"
//	@Success		200		{object}	domain.AdminOverride
//	@Failure		400		{object}	map[string]string
//	@Router			/admin-settings [post]
func (app *application) updateAdminSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateAdminSettingsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	saved, err := app.adminService.Save(r.Context(), domain.AdminOverride{
		Mode:            domain.AdminMode(req.Mode),
		WaitTimeMinutes: req.WaitTimeMinutes,
		CustomNote:      req.CustomNote,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSettings) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, saved); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getWaitTimeOptionsHandler godoc
//
//	@Summary		List selectable wait times
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	ordering.WaitTimeOption
//	@Router			/admin-settings/wait-time-options [get]
func (app *application) getWaitTimeOptionsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonRespone(w, http.StatusOK, ordering.WaitTimeOptions()); err != nil {
		app.internalServerError(w, r, err)
	}
}
