package main

import (
	"net/http"
)

// getOrderingStatusHandler godoc
//
//	@Summary		Get ordering availability
//	@Description	Combines the time-of-day window with the admin override
//	@Tags			ordering
//	@Produce		json
//	@Success		200	{object}	ordering.StatusInfo
//	@Router			/ordering-status [get]
func (app *application) getOrderingStatusHandler(w http.ResponseWriter, r *http.Request) {
	info := app.poller.Refresh(r.Context())

	if err := app.jsonRespone(w, http.StatusOK, info); err != nil {
		app.internalServerError(w, r, err)
	}
}
