package main

import (
	"fmt"
	"net/http"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/go-chi/chi"
)

// getMenuHandler godoc
//
//	@Summary		Get full menu
//	@Description	Returns every purchasable item in menu order
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}	domain.CatalogItem
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonRespone(w, http.StatusOK, app.catalog.Items()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuByTypeHandler godoc
//
//	@Summary		Get menu by product type
//	@Tags			menu
//	@Produce		json
//	@Param			type	path		string	true	"Product type"
//	@Success		200		{array}		domain.CatalogItem
//	@Failure		400		{object}	map[string]string
//	@Router			/menu/{type} [get]
func (app *application) getMenuByTypeHandler(w http.ResponseWriter, r *http.Request) {
	productType := domain.ProductType(chi.URLParam(r, "type"))
	if !productType.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("unknown product type %q", productType))
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, app.catalog.ByType(productType)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getExtrasHandler godoc
//
//	@Summary		Get extras for a product type
//	@Tags			menu
//	@Produce		json
//	@Param			type	path		string	true	"Product type"
//	@Success		200		{array}		domain.Extra
//	@Failure		400		{object}	map[string]string
//	@Router			/menu/{type}/extras [get]
func (app *application) getExtrasHandler(w http.ResponseWriter, r *http.Request) {
	productType := domain.ProductType(chi.URLParam(r, "type"))
	if !productType.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("unknown product type %q", productType))
		return
	}

	extras := app.catalog.ExtrasFor(productType)
	if extras == nil {
		extras = []domain.Extra{}
	}

	if err := app.jsonRespone(w, http.StatusOK, extras); err != nil {
		app.internalServerError(w, r, err)
	}
}
